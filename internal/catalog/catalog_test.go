package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wowbook/clarity-backend/internal/types"
)

func TestQuestionCatalogShape(t *testing.T) {
	qs := Questions()
	if len(qs) != 13 {
		t.Fatalf("expected 13 questions, got %d", len(qs))
	}
	axisCount := map[types.Axis]int{}
	for _, q := range qs {
		if q.Axis != types.AxisNone {
			axisCount[q.Axis]++
		}
		if q.Kind == types.QuestionMultiple && q.MaxSelect == 0 {
			t.Errorf("question %s: multiple select without maxSelect", q.ID)
		}
	}
	for _, axis := range []types.Axis{types.AxisSpace, types.AxisEnergy, types.AxisFocus, types.AxisLanguage} {
		if axisCount[axis] != 2 {
			t.Errorf("axis %s: expected 2 questions, got %d", axis, axisCount[axis])
		}
	}
}

func TestOptionByValue(t *testing.T) {
	opt, ok := OptionByValue("q1", "q1-a2")
	if !ok {
		t.Fatal("q1-a2 not found")
	}
	if opt.Emotion != types.EmotionSocial || opt.Weight != 2 {
		t.Errorf("unexpected option: %+v", opt)
	}
	if _, ok := OptionByValue("q1", "q2-a1"); ok {
		t.Error("value from another question should not resolve")
	}
	if _, ok := OptionByValue("nope", "q1-a1"); ok {
		t.Error("unknown question should not resolve")
	}
}

func TestClarityTypeCompatibility(t *testing.T) {
	if len(ClarityTypes()) != 16 {
		t.Fatalf("expected 16 clarity types, got %d", len(ClarityTypes()))
	}
	ct, ok := ClarityTypeByCode("IBSC")
	if !ok {
		t.Fatal("IBSC missing")
	}
	if ct.BestMatch != "OBSC" {
		t.Errorf("best match = %s, want OBSC", ct.BestMatch)
	}
	if ct.ConflictMatch != "OGLW" {
		t.Errorf("conflict match = %s, want OGLW", ct.ConflictMatch)
	}
	for _, entry := range ClarityTypes() {
		if _, ok := ClarityTypeByCode(entry.BestMatch); !ok {
			t.Errorf("%s: best match %s not in catalog", entry.Code, entry.BestMatch)
		}
		if _, ok := ClarityTypeByCode(entry.ConflictMatch); !ok {
			t.Errorf("%s: conflict match %s not in catalog", entry.Code, entry.ConflictMatch)
		}
	}
}

func TestLoadProgramOverrides(t *testing.T) {
	original := Programs()
	defer func() {
		programs = original
		if err := indexPrograms(programs); err != nil {
			t.Fatalf("restore: %v", err)
		}
	}()

	path := filepath.Join(t.TempDir(), "programs.yaml")
	doc := `
- id: next-1
  title: 다음 축제 개막식
  category: 개막행사
  date: 10.16.금
  time: "18:00"
  location: 서교스퀘어홀
  description: 내년 축제의 문을 엽니다.
  tags: [개막]
  emotionMatch:
    calm: 50
    active: 80
    reflective: 60
    social: 90
- id: next-2
  title: 작가와의 밤
  category: 토크
  date: 10.17.토
  time: "19:00"
  location: 제비다방
  description: 올해의 작가들과 나누는 대화.
  tags: [토크]
  emotionMatch:
    calm: 60
    active: 40
    reflective: 90
    social: 70
- id: next-3
  title: 새벽 낭독회
  category: 낭독
  date: 10.18.일
  time: "07:00"
  location: 연희동 책방
  description: 고요한 아침의 낭독.
  tags: [낭독]
  emotionMatch:
    calm: 95
    active: 20
    reflective: 80
    social: 30
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadProgramOverrides(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	p, ok := ProgramByID("next-1")
	if !ok {
		t.Fatal("override program not indexed")
	}
	if p.EmotionMatch.Social != 90 {
		t.Errorf("emotionMatch not parsed: %+v", p.EmotionMatch)
	}
	if len(Programs()) != 3 {
		t.Errorf("expected 3 programs after override, got %d", len(Programs()))
	}
}

func TestLoadProgramOverridesRequiresThree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "programs.yaml")
	doc := "- {id: a, title: t1}\n- {id: b, title: t2}\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadProgramOverrides(path); err == nil {
		t.Fatal("two-program catalog should not load")
	}
	if len(Programs()) != 13 {
		t.Errorf("rejected override must leave the catalog untouched, got %d programs", len(Programs()))
	}
}

func TestLoadProgramOverridesRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "programs.yaml")
	if err := os.WriteFile(path, []byte("- {id: a, title: t}\n- {id: a, title: t}\n- {id: b, title: t}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadProgramOverrides(path); err == nil {
		t.Error("expected error for duplicate ids")
	}
	if err := LoadProgramOverrides(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
