package statutory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type bracketJSON struct {
	From  decimal.Decimal `json:"from"`
	Value decimal.Decimal `json:"value"`
}

// ParseBrackets decodes a bracket table from its JSON configuration form,
// e.g. [{"from":"0","value":"0"},{"from":"25000","value":"200"}].
func ParseBrackets(raw string) ([]Bracket, error) {
	if raw == "" {
		return nil, nil
	}

	var rows []bracketJSON
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, fmt.Errorf("parse bracket table: %w", err)
	}

	brackets := make([]Bracket, len(rows))
	for i, row := range rows {
		if row.From.IsNegative() || row.Value.IsNegative() {
			return nil, fmt.Errorf("bracket table: negative entry at index %d", i)
		}
		brackets[i] = Bracket{From: row.From, Value: row.Value}
	}
	return brackets, nil
}
