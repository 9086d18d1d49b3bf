package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"setpiece-service/internal/domain/takers"
	"setpiece-service/internal/logging"
)

// Section heading patterns. Club anchors are built per club; the sub-block
// patterns are fixed and capture the lines between two headings
// non-greedily, so a missing closing heading simply yields no match.
var (
	penaltiesPattern = regexp.MustCompile(`Penalties\s*\n((?:.*\n)+?)Direct free-kicks`)
	directFKPattern  = regexp.MustCompile(`Direct free-kicks\s*\n((?:.*\n)+?)Corners & indirect free-kicks`)
	cornersAnchor    = regexp.MustCompile(`Corners & indirect free-kicks\s*\n`)
)

// maxTakerTokens is the classification heuristic for corner-taker lines: a
// line with more whitespace-separated tokens than this is treated as the
// start of free-text notes, and every line after it stays a note.
const maxTakerTokens = 2

// Extractor slices a set-piece report into per-club records.
type Extractor struct {
	roster  []string
	anchors []*regexp.Regexp
	logger  *slog.Logger
}

// New builds an Extractor for the given club roster. An empty roster falls
// back to the default Premier League roster.
func New(roster []string, logger *slog.Logger) *Extractor {
	if len(roster) == 0 {
		roster = takers.Roster()
	}
	anchors := make([]*regexp.Regexp, len(roster))
	for i, club := range roster {
		anchors[i] = regexp.MustCompile(regexp.QuoteMeta(club) + `\s*\nPenalties`)
	}
	return &Extractor{
		roster:  roster,
		anchors: anchors,
		logger:  logger,
	}
}

// Roster returns the club list this extractor scans for, in order.
func (e *Extractor) Roster() []string {
	out := make([]string, len(e.roster))
	copy(out, e.roster)
	return out
}

// Parse scans the report content and returns a document keyed by club in
// roster order. Clubs whose anchor ("<club>\nPenalties") is absent from the
// content are omitted; a missing club never shifts the boundaries of the
// clubs after it, because every section is located by its own anchor search
// over the whole content.
func (e *Extractor) Parse(content string) *takers.Document {
	doc := takers.NewDocument()

	for i := range e.roster {
		loc := e.anchors[i].FindStringIndex(content)
		if loc == nil {
			continue
		}
		start := loc[0]

		end := len(content)
		if i < len(e.roster)-1 {
			if next := e.anchors[i+1].FindStringIndex(content); next != nil {
				end = next[0]
				// Out-of-roster-order input: the next club's anchor sits
				// before this one, leaving an empty section.
				if end < start {
					end = start
				}
			}
		}

		rec := parseSection(content[start:end])
		doc.Set(e.roster[i], rec)
		logging.Info(e.logger, "parsed club section",
			slog.String(logging.FieldClub, e.roster[i]),
			slog.Int(logging.FieldCount, len(rec.Penalties)+len(rec.DirectFreeKicks)+len(rec.CornersIndirectFreeKicks)),
		)
	}

	return doc
}

// parseSection extracts the three taker lists and the notes from one club's
// section. The three searches are independent and all run against the full
// section text.
func parseSection(section string) takers.ClubRecord {
	rec := takers.NewClubRecord()

	if m := penaltiesPattern.FindStringSubmatch(section); m != nil {
		rec.Penalties = splitLines(m[1])
	}
	if m := directFKPattern.FindStringSubmatch(section); m != nil {
		rec.DirectFreeKicks = splitLines(m[1])
	}
	if loc := cornersAnchor.FindStringIndex(section); loc != nil {
		block := cornersBlock(section[loc[1]:])
		rec.CornersIndirectFreeKicks, rec.Notes = classifyCorners(block)
	}

	return rec
}

// cornersBlock returns the lines after the corners anchor up to the first
// blank line (whitespace-only) or the end of the section.
func cornersBlock(rest string) []string {
	var block []string
	for _, line := range strings.Split(rest, "\n") {
		if strings.TrimSpace(line) == "" {
			break
		}
		block = append(block, line)
	}
	return block
}

// classifyCorners splits the block into the leading run of taker names and
// the trailing notes. The switch to notes is a one-way latch: once a line
// exceeds the token limit, that line and everything after it are notes,
// regardless of their own length.
func classifyCorners(block []string) (cornerTakers, notes []string) {
	cornerTakers = []string{}
	notes = []string{}

	inNotes := false
	for _, raw := range block {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !inNotes && len(strings.Fields(line)) <= maxTakerTokens {
			cornerTakers = append(cornerTakers, line)
			continue
		}
		inNotes = true
		notes = append(notes, line)
	}
	return cornerTakers, notes
}

// splitLines trims every line in a captured block and drops blanks,
// preserving order.
func splitLines(block string) []string {
	out := []string{}
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
