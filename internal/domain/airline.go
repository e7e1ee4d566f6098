package domain

import "strings"

// airlineEntry pairs an IATA airline code with its display name. The table
// below is scanned in order during name matching, so the position of an
// entry is the tie-break when more than one display name would match.
type airlineEntry struct {
	Code string
	Name string
}

// airlineTable is the closed set of airlines known to the tool. Name
// matching walks this table top to bottom and the first hit wins. The
// trailing "SAS" entry shadows SK for name lookups on purpose: the display
// name "SAS" resolves to the code "SAS", matching long-standing behavior
// that downstream consumers rely on.
var airlineTable = []airlineEntry{
	{Code: "QR", Name: "Qatar Airways"},
	{Code: "QF", Name: "Qantas"},
	{Code: "BA", Name: "British Airways"},
	{Code: "EK", Name: "Emirates"},
	{Code: "SK", Name: "SAS"},
	{Code: "SQ", Name: "Singapore Airlines"},
	{Code: "AY", Name: "Finnair"},
	{Code: "SAS", Name: "SAS"},
}

// airlineCodeSet indexes the table by code for O(1) membership checks.
var airlineCodeSet = buildAirlineCodeSet()

// airlineNameIndex lists (lower-cased name, code) pairs in scan order. A
// name appearing more than once keeps its first position but resolves to the
// code of its last occurrence.
var airlineNameIndex = buildAirlineNameIndex()

func buildAirlineCodeSet() map[string]struct{} {
	set := make(map[string]struct{}, len(airlineTable))
	for _, entry := range airlineTable {
		set[entry.Code] = struct{}{}
	}
	return set
}

func buildAirlineNameIndex() []airlineEntry {
	index := make([]airlineEntry, 0, len(airlineTable))
	position := make(map[string]int, len(airlineTable))
	for _, entry := range airlineTable {
		name := strings.ToLower(entry.Name)
		if i, ok := position[name]; ok {
			index[i].Code = entry.Code
			continue
		}
		position[name] = len(index)
		index = append(index, airlineEntry{Code: entry.Code, Name: name})
	}
	return index
}

// AirlineName returns the display name for an IATA airline code, or the
// code itself when the airline is not in the table.
func AirlineName(code string) string {
	for _, entry := range airlineTable {
		if entry.Code == code {
			return entry.Name
		}
	}
	return code
}

// NormalizeAirlineCodes turns a comma-separated user input into a list of
// IATA airline codes. Empty or blank input returns nil, meaning "no filter".
//
// Each token is trimmed and upper-cased, then resolved in three steps:
// known IATA code kept as-is; otherwise a case-insensitive substring match
// against known display names substitutes the matching code (first match in
// table order wins); otherwise the token is kept verbatim so unknown
// airlines still filter exactly.
func NormalizeAirlineCodes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var codes []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.ToUpper(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		codes = append(codes, resolveAirlineToken(token))
	}
	if len(codes) == 0 {
		return nil
	}
	return codes
}

func resolveAirlineToken(token string) string {
	if _, ok := airlineCodeSet[token]; ok {
		return token
	}

	lowered := strings.ToLower(token)
	for _, entry := range airlineNameIndex {
		if strings.Contains(entry.Name, lowered) {
			return entry.Code
		}
	}
	return token
}
