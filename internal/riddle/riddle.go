package riddle

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
)

//go:embed riddles.json
var defaultTable []byte

// ErrInvalidTable is wrapped by every validation failure from Parse.
var ErrInvalidTable = errors.New("invalid riddle table")

type Riddle struct {
	Number         int    `json:"number"`
	Prompt         string `json:"prompt"`
	Answer         string `json:"answer"`
	SuccessMessage string `json:"successMessage"`
}

type tableFile struct {
	Riddles []Riddle `json:"riddles"`
}

// Table is the ordered, read-only riddle sequence numbered 1..Len().
type Table struct {
	riddles []Riddle
}

// Default returns the built-in table.
func Default() (Table, error) {
	return Parse(defaultTable)
}

// LoadFile reads a table from a JSON file on disk.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read riddles file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a JSON riddle table.
func Parse(data []byte) (Table, error) {
	var tf tableFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return Table{}, fmt.Errorf("decode riddles: %w", err)
	}
	if err := validate(tf.Riddles); err != nil {
		return Table{}, err
	}
	return Table{riddles: tf.Riddles}, nil
}

func validate(riddles []Riddle) error {
	if len(riddles) == 0 {
		return fmt.Errorf("%w: no riddles", ErrInvalidTable)
	}
	for i, r := range riddles {
		if r.Number != i+1 {
			return fmt.Errorf("%w: entry %d has number %d, want %d", ErrInvalidTable, i, r.Number, i+1)
		}
		if strings.TrimSpace(r.Prompt) == "" {
			return fmt.Errorf("%w: riddle %d has no prompt", ErrInvalidTable, r.Number)
		}
		if r.Answer == "" {
			return fmt.Errorf("%w: riddle %d has no answer", ErrInvalidTable, r.Number)
		}
		// Guesses are compared byte for byte, and players are told answers are lowercase.
		if r.Answer != strings.ToLower(r.Answer) {
			return fmt.Errorf("%w: riddle %d answer %q is not lowercase", ErrInvalidTable, r.Number, r.Answer)
		}
		if strings.TrimSpace(r.SuccessMessage) == "" {
			return fmt.Errorf("%w: riddle %d has no success message", ErrInvalidTable, r.Number)
		}
	}
	return nil
}

// Len returns the number of riddles.
func (t Table) Len() int {
	return len(t.riddles)
}

// All returns a copy of the riddles in order.
func (t Table) All() []Riddle {
	return slices.Clone(t.riddles)
}

// Get returns the riddle with the given number.
func (t Table) Get(number int) (Riddle, bool) {
	return lo.Find(t.riddles, func(r Riddle) bool {
		return r.Number == number
	})
}

// FinalNumber is the number of the completion page that follows the last riddle.
func (t Table) FinalNumber() int {
	return len(t.riddles) + 1
}
