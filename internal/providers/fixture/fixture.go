package fixture

import "context"

// report is a deterministic sample of the set-piece section of an FPL
// scout report, useful for local boot and tests without the real file.
const report = `Set-piece takers 2024/25

Arsenal
Penalties
Saka
Ødegaard
Direct free-kicks
Rice
Trossard
Corners & indirect free-kicks
Saka
Rice
Both can be outswingers or inswingers depending on the side

Chelsea
Penalties
Palmer
Direct free-kicks
Palmer
Enzo
Corners & indirect free-kicks
Palmer
Chilwell
Palmer is on everything when on the pitch

Liverpool
Penalties
Salah
Direct free-kicks
Szoboszlai
Alexander-Arnold
Corners & indirect free-kicks
Robertson
Alexander-Arnold

Man City
Penalties
Haaland
Direct free-kicks
De Bruyne
Corners & indirect free-kicks
De Bruyne
Foden

Wolves
Penalties
Cunha
Direct free-kicks
Sarabia
Corners & indirect free-kicks
Sarabia
Bellegarde
`

// Provider returns a static report useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies this provider in logs and metrics.
func (p *Provider) Name() string { return "fixture" }

// FetchReport returns the embedded sample report.
func (p *Provider) FetchReport(ctx context.Context) (string, error) {
	_ = ctx
	return report, nil
}
