package providers

import "context"

// ReportProvider defines how the raw set-piece report text is obtained.
// Implementations return the full report content as UTF-8 text.
type ReportProvider interface {
	FetchReport(ctx context.Context) (string, error)
}

// Name returns the provider's self-reported name when it exposes one.
func Name(p ReportProvider) string {
	if named, ok := p.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "unknown"
}
