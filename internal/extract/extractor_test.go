package extract

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"setpiece-service/internal/domain/takers"
)

const sampleReport = `Set-piece takers for every Premier League club

Arsenal
Penalties
Saka
Ødegaard
Direct free-kicks
Rice
Ødegaard
Corners & indirect free-kicks
Saka
Rice
Set pieces depend on the opponent and situation
White takes some too

Chelsea
Penalties
Palmer
Direct free-kicks
Palmer
Corners & indirect free-kicks
Palmer
Gusto
`

func TestParseSplitsSectionsOnClubAnchors(t *testing.T) {
	e := New([]string{"Arsenal", "Chelsea"}, nil)
	doc := e.Parse(sampleReport)

	if got := doc.Clubs(); !reflect.DeepEqual(got, []string{"Arsenal", "Chelsea"}) {
		t.Fatalf("unexpected clubs %v", got)
	}

	arsenal, ok := doc.Get("Arsenal")
	if !ok {
		t.Fatal("expected Arsenal record")
	}
	if !reflect.DeepEqual(arsenal.Penalties, []string{"Saka", "Ødegaard"}) {
		t.Fatalf("unexpected penalties %v", arsenal.Penalties)
	}
	if !reflect.DeepEqual(arsenal.DirectFreeKicks, []string{"Rice", "Ødegaard"}) {
		t.Fatalf("unexpected direct free-kicks %v", arsenal.DirectFreeKicks)
	}
	if !reflect.DeepEqual(arsenal.CornersIndirectFreeKicks, []string{"Saka", "Rice"}) {
		t.Fatalf("unexpected corner takers %v", arsenal.CornersIndirectFreeKicks)
	}
	wantNotes := []string{
		"Set pieces depend on the opponent and situation",
		"White takes some too",
	}
	if !reflect.DeepEqual(arsenal.Notes, wantNotes) {
		t.Fatalf("unexpected notes %v", arsenal.Notes)
	}

	chelsea, ok := doc.Get("Chelsea")
	if !ok {
		t.Fatal("expected Chelsea record")
	}
	if !reflect.DeepEqual(chelsea.Penalties, []string{"Palmer"}) {
		t.Fatalf("unexpected Chelsea penalties %v", chelsea.Penalties)
	}
	if !reflect.DeepEqual(chelsea.CornersIndirectFreeKicks, []string{"Palmer", "Gusto"}) {
		t.Fatalf("unexpected Chelsea corner takers %v", chelsea.CornersIndirectFreeKicks)
	}
	if len(chelsea.Notes) != 0 {
		t.Fatalf("unexpected Chelsea notes %v", chelsea.Notes)
	}
}

func TestParseSkipsClubWithoutAnchor(t *testing.T) {
	content := `Arsenal
Penalties
Saka
Direct free-kicks
Rice
Corners & indirect free-kicks
Saka

Liverpool
Penalties
Salah
Direct free-kicks
Alexander-Arnold
Corners & indirect free-kicks
Robertson
`
	e := New([]string{"Arsenal", "Chelsea", "Liverpool"}, nil)
	doc := e.Parse(content)

	if _, ok := doc.Get("Chelsea"); ok {
		t.Fatal("expected Chelsea to be absent")
	}
	if got := doc.Clubs(); !reflect.DeepEqual(got, []string{"Arsenal", "Liverpool"}) {
		t.Fatalf("unexpected clubs %v", got)
	}

	// The clubs around the gap keep their own values.
	arsenal, _ := doc.Get("Arsenal")
	if !reflect.DeepEqual(arsenal.Penalties, []string{"Saka"}) {
		t.Fatalf("unexpected Arsenal penalties %v", arsenal.Penalties)
	}
	liverpool, _ := doc.Get("Liverpool")
	if !reflect.DeepEqual(liverpool.Penalties, []string{"Salah"}) {
		t.Fatalf("unexpected Liverpool penalties %v", liverpool.Penalties)
	}
	if !reflect.DeepEqual(liverpool.CornersIndirectFreeKicks, []string{"Robertson"}) {
		t.Fatalf("unexpected Liverpool corner takers %v", liverpool.CornersIndirectFreeKicks)
	}
}

func TestParseLastClubRunsToEndOfContent(t *testing.T) {
	content := `Wolves
Penalties
Cunha
Direct free-kicks
Sarabia
Corners & indirect free-kicks
Sarabia
Doherty
`
	e := New([]string{"Spurs", "Wolves"}, nil)
	doc := e.Parse(content)

	wolves, ok := doc.Get("Wolves")
	if !ok {
		t.Fatal("expected Wolves record")
	}
	if !reflect.DeepEqual(wolves.CornersIndirectFreeKicks, []string{"Sarabia", "Doherty"}) {
		t.Fatalf("unexpected corner takers %v", wolves.CornersIndirectFreeKicks)
	}
}

func TestParseOutOfOrderSectionsYieldEmptyRecord(t *testing.T) {
	content := `Chelsea
Penalties
Palmer
Direct free-kicks
Palmer
Corners & indirect free-kicks
Palmer

Arsenal
Penalties
Saka
Direct free-kicks
Rice
Corners & indirect free-kicks
Saka
`
	e := New([]string{"Arsenal", "Chelsea"}, nil)
	doc := e.Parse(content)

	// Arsenal appears after Chelsea in the text, so its section is empty.
	arsenal, ok := doc.Get("Arsenal")
	if !ok {
		t.Fatal("expected Arsenal record")
	}
	if len(arsenal.Penalties) != 0 || len(arsenal.DirectFreeKicks) != 0 || len(arsenal.CornersIndirectFreeKicks) != 0 {
		t.Fatalf("expected empty record for out-of-order section, got %+v", arsenal)
	}

	chelsea, ok := doc.Get("Chelsea")
	if !ok {
		t.Fatal("expected Chelsea record")
	}
	if !reflect.DeepEqual(chelsea.Penalties, []string{"Palmer"}) {
		t.Fatalf("unexpected Chelsea penalties %v", chelsea.Penalties)
	}
}

func TestParseSectionWithoutClosingHeadingsYieldsEmptyLists(t *testing.T) {
	content := `Arsenal
Penalties
Saka
Rice
`
	e := New([]string{"Arsenal"}, nil)
	doc := e.Parse(content)

	rec, ok := doc.Get("Arsenal")
	if !ok {
		t.Fatal("expected Arsenal record despite truncated section")
	}
	if len(rec.Penalties) != 0 || len(rec.DirectFreeKicks) != 0 || len(rec.CornersIndirectFreeKicks) != 0 || len(rec.Notes) != 0 {
		t.Fatalf("expected all-empty record, got %+v", rec)
	}
	if rec.Penalties == nil || rec.Notes == nil {
		t.Fatal("expected empty slices, not nil")
	}
}

func TestClassifyCornersLatchIsOneWay(t *testing.T) {
	block := []string{
		"Saka",
		"Ødegaard",
		"Set pieces depend on the opponent and situation",
		"Rice",
	}
	cornerTakers, notes := classifyCorners(block)

	if !reflect.DeepEqual(cornerTakers, []string{"Saka", "Ødegaard"}) {
		t.Fatalf("unexpected corner takers %v", cornerTakers)
	}
	// Rice would pass the token check but the latch has already flipped.
	if !reflect.DeepEqual(notes, []string{"Set pieces depend on the opponent and situation", "Rice"}) {
		t.Fatalf("unexpected notes %v", notes)
	}
}

func TestClassifyCornersTwoTokenNamesStayTakers(t *testing.T) {
	cornerTakers, notes := classifyCorners([]string{
		"Bruno Fernandes",
		"Eriksen",
	})
	if !reflect.DeepEqual(cornerTakers, []string{"Bruno Fernandes", "Eriksen"}) {
		t.Fatalf("unexpected corner takers %v", cornerTakers)
	}
	if len(notes) != 0 {
		t.Fatalf("unexpected notes %v", notes)
	}
}

func TestCornersBlockStopsAtBlankLine(t *testing.T) {
	rest := "Saka\nRice\n   \nNot part of the block\n"
	block := cornersBlock(rest)
	if !reflect.DeepEqual(block, []string{"Saka", "Rice"}) {
		t.Fatalf("unexpected block %v", block)
	}
}

func TestParseCornersStopAtBlankLineInsideSection(t *testing.T) {
	content := `Arsenal
Penalties
Saka
Direct free-kicks
Rice
Corners & indirect free-kicks
Saka
Rice

Updated after the January window.
`
	e := New([]string{"Arsenal"}, nil)
	doc := e.Parse(content)

	rec, _ := doc.Get("Arsenal")
	if !reflect.DeepEqual(rec.CornersIndirectFreeKicks, []string{"Saka", "Rice"}) {
		t.Fatalf("unexpected corner takers %v", rec.CornersIndirectFreeKicks)
	}
	if len(rec.Notes) != 0 {
		t.Fatalf("expected text after the blank line to be dropped, got notes %v", rec.Notes)
	}
}

func TestParseDefaultRosterOrderPreserved(t *testing.T) {
	var sb strings.Builder
	for _, club := range takers.Roster() {
		sb.WriteString(club)
		sb.WriteString("\nPenalties\nA\nDirect free-kicks\nB\nCorners & indirect free-kicks\nC\n\n")
	}

	e := New(nil, nil)
	doc := e.Parse(sb.String())

	if !reflect.DeepEqual(doc.Clubs(), takers.Roster()) {
		t.Fatalf("unexpected club order %v", doc.Clubs())
	}
}

func TestParseIsIdempotent(t *testing.T) {
	e := New([]string{"Arsenal", "Chelsea"}, nil)

	first, err := e.Parse(sampleReport).EncodeIndent()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	second, err := e.Parse(sampleReport).EncodeIndent()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("expected byte-identical output for identical input")
	}
}

func TestEncodeKeepsLiteralCharacters(t *testing.T) {
	e := New([]string{"Arsenal"}, nil)
	content := `Arsenal
Penalties
Ødegaard
Direct free-kicks
Rice
Corners & indirect free-kicks
Saka
Saka & Rice share corners depending on the side
`
	out, err := e.Parse(content).EncodeIndent()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, "Ødegaard") {
		t.Fatalf("expected literal Ødegaard in output: %s", s)
	}
	if !strings.Contains(s, "Saka & Rice") {
		t.Fatalf("expected literal ampersand in output: %s", s)
	}
	if strings.Contains(s, `\u0026`) {
		t.Fatalf("expected no escaped ampersand in output: %s", s)
	}
	if !strings.Contains(s, "\n    \"Arsenal\"") {
		t.Fatalf("expected 4-space indentation: %s", s)
	}
}
