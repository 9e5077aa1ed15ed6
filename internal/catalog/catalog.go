package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wowbook/clarity-backend/internal/types"
)

var (
	questionIndex    map[string]*types.Question
	optionIndex      map[string]map[string]*types.Option
	programIndex     map[string]*types.Program
	clarityTypeIndex map[types.ClarityTypeCode]*types.ClarityType
)

func init() {
	if err := buildIndexes(); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

func buildIndexes() error {
	questionIndex = make(map[string]*types.Question, len(questions))
	optionIndex = make(map[string]map[string]*types.Option)
	for i := range questions {
		q := &questions[i]
		if q.ID == "" {
			return fmt.Errorf("question %d has empty id", i)
		}
		if _, dup := questionIndex[q.ID]; dup {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		if q.Kind == types.QuestionFreeText && len(q.Options) > 0 {
			return fmt.Errorf("question %q: free text questions carry no options", q.ID)
		}
		if q.Kind != types.QuestionFreeText && len(q.Options) < 2 {
			return fmt.Errorf("question %q: needs at least two options", q.ID)
		}
		byValue := make(map[string]*types.Option, len(q.Options))
		for j := range q.Options {
			opt := &q.Options[j]
			if opt.Value == "" || opt.Weight <= 0 {
				return fmt.Errorf("question %q option %q: missing value or weight", q.ID, opt.ID)
			}
			if _, dup := byValue[opt.Value]; dup {
				return fmt.Errorf("question %q: duplicate option value %q", q.ID, opt.Value)
			}
			if opt.AxisLetter != "" && !strings.Contains(string(q.Axis), opt.AxisLetter) {
				return fmt.Errorf("question %q option %q: letter %q not on axis %q", q.ID, opt.ID, opt.AxisLetter, q.Axis)
			}
			byValue[opt.Value] = opt
		}
		questionIndex[q.ID] = q
		optionIndex[q.ID] = byValue
	}

	if err := indexPrograms(programs); err != nil {
		return err
	}

	clarityTypeIndex = make(map[types.ClarityTypeCode]*types.ClarityType, len(clarityTypes))
	for i := range clarityTypes {
		ct := &clarityTypes[i]
		if len(ct.Code) != 4 {
			return fmt.Errorf("clarity type %q: code must be four letters", ct.Code)
		}
		if _, dup := clarityTypeIndex[ct.Code]; dup {
			return fmt.Errorf("duplicate clarity type %q", ct.Code)
		}
		ct.BestMatch = flipLetters(ct.Code, 0)
		ct.ConflictMatch = flipLetters(ct.Code, 0, 1, 2, 3)
		clarityTypeIndex[ct.Code] = ct
	}
	return nil
}

func indexPrograms(list []types.Program) error {
	idx := make(map[string]*types.Program, len(list))
	for i := range list {
		p := &list[i]
		if p.ID == "" || p.Title == "" {
			return fmt.Errorf("program %d: missing id or title", i)
		}
		if _, dup := idx[p.ID]; dup {
			return fmt.Errorf("duplicate program id %q", p.ID)
		}
		idx[p.ID] = p
	}
	programIndex = idx
	return nil
}

var axisPairs = [4][2]byte{{'I', 'O'}, {'B', 'G'}, {'S', 'L'}, {'C', 'W'}}

func flipLetters(code types.ClarityTypeCode, positions ...int) types.ClarityTypeCode {
	b := []byte(code)
	for _, pos := range positions {
		pair := axisPairs[pos]
		if b[pos] == pair[0] {
			b[pos] = pair[1]
		} else {
			b[pos] = pair[0]
		}
	}
	return types.ClarityTypeCode(b)
}

// Questions returns the full ordered question catalog. Callers must treat
// the returned slice as read-only.
func Questions() []types.Question { return questions }

func QuestionByID(id string) (*types.Question, bool) {
	q, ok := questionIndex[id]
	return q, ok
}

// OptionByValue resolves a selected value against a question's options.
func OptionByValue(questionID, value string) (*types.Option, bool) {
	byValue, ok := optionIndex[questionID]
	if !ok {
		return nil, false
	}
	opt, ok := byValue[value]
	return opt, ok
}

// Programs returns the recommendable program catalog. Read-only.
func Programs() []types.Program { return programs }

func ProgramByID(id string) (*types.Program, bool) {
	p, ok := programIndex[id]
	return p, ok
}

func ClarityTypes() []types.ClarityType { return clarityTypes }

func ClarityTypeByCode(code types.ClarityTypeCode) (*types.ClarityType, bool) {
	ct, ok := clarityTypeIndex[code]
	return ct, ok
}

// The recommender always returns three picks, so a smaller catalog can
// never serve a request. Matches engine.RecommendationCount, which cannot
// be imported from here.
const minOverridePrograms = 3

// LoadProgramOverrides replaces the compiled-in program catalog with the
// contents of a YAML file. Meant to run once at startup, before any request
// reads the catalog. An override with fewer than three programs is rejected
// so a misconfigured catalog fails the boot instead of every analyze call.
func LoadProgramOverrides(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read program catalog: %w", err)
	}
	var loaded []types.Program
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("parse program catalog: %w", err)
	}
	if len(loaded) < minOverridePrograms {
		return fmt.Errorf("program catalog %s has %d programs, need at least %d", path, len(loaded), minOverridePrograms)
	}
	if err := indexPrograms(loaded); err != nil {
		return err
	}
	programs = loaded
	return nil
}
