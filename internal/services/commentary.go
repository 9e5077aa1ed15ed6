package services

import (
	"fmt"
	"strings"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/types"
)

const defaultMessage = "당신만의 특별한 여정이 기다리고 있어요."

// Commentary is the AI-authored layer of a recommendation. The deterministic
// fields never depend on it.
type Commentary struct {
	ProgramReasons map[string]string   `json:"programReasons"`
	Journey        []types.JourneyStep `json:"journey"`
	Message        string              `json:"message"`
}

var journeyIcons = []string{"🎯", "✨", "🌟", "🌈"}

// defaultCommentary is what the user sees when the AI is unavailable or
// returns garbage.
func defaultCommentary(picks []types.Program) Commentary {
	reasons := make(map[string]string, len(picks))
	journey := make([]types.JourneyStep, 0, len(picks))
	for i, p := range picks {
		reasons[p.ID] = fmt.Sprintf("'%s'은(는) 지금의 당신에게 잘 맞는 프로그램이에요. %s %s, %s에서 만나보세요.", p.Title, p.Date, p.Time, p.Location)
		keyword := p.Category
		if len(p.Tags) > 0 {
			keyword = p.Tags[0]
		}
		journey = append(journey, types.JourneyStep{
			Icon:    journeyIcons[i%len(journeyIcons)],
			Keyword: keyword,
			Action:  p.Title + " 참여하기",
			Date:    p.Date + " " + p.Time,
		})
	}
	return Commentary{
		ProgramReasons: reasons,
		Journey:        journey,
		Message:        defaultMessage,
	}
}

// mergeCommentary overlays AI output on the defaults so missing pieces never
// leave holes in the response.
func mergeCommentary(fallback, ai Commentary, picks []types.Program) Commentary {
	out := fallback
	if strings.TrimSpace(ai.Message) != "" {
		out.Message = ai.Message
	}
	if len(ai.Journey) > 0 {
		out.Journey = ai.Journey
	}
	for _, p := range picks {
		if reason, ok := ai.ProgramReasons[p.ID]; ok && strings.TrimSpace(reason) != "" {
			out.ProgramReasons[p.ID] = reason
		}
	}
	return out
}

// answersNarrative renders the submission as question/answer text for the
// prompt, the way the quiz UI would read it aloud.
func answersNarrative(answers []types.Answer) string {
	blocks := make([]string, 0, len(answers))
	for _, ans := range answers {
		q, ok := catalog.QuestionByID(ans.QuestionID)
		if !ok {
			continue
		}
		if q.Kind == types.QuestionFreeText {
			text := ans.Text
			if text == "" && len(ans.Values) == 1 {
				text = ans.Values[0]
			}
			blocks = append(blocks, fmt.Sprintf("%s\n답변: %s", q.Title, text))
			continue
		}
		picked := make([]string, 0, len(ans.Values))
		for _, v := range ans.Values {
			if opt, ok := catalog.OptionByValue(q.ID, v); ok {
				picked = append(picked, opt.Text)
			}
		}
		blocks = append(blocks, fmt.Sprintf("%s\n답변: %s", q.Title, strings.Join(picked, ", ")))
	}
	return strings.Join(blocks, "\n\n")
}

func programsNarrative(picks []types.Program) string {
	blocks := make([]string, 0, len(picks))
	for i, p := range picks {
		blocks = append(blocks, fmt.Sprintf(`%d. %s (%s)
   - 날짜/시간: %s %s
   - 장소: %s
   - 설명: %s
   - 태그: %s`, i+1, p.Title, p.Category, p.Date, p.Time, p.Location, p.Description, strings.Join(p.Tags, ", ")))
	}
	return strings.Join(blocks, "\n\n")
}

// buildCommentaryPrompt asks only for the decorative layer. Profile, score
// and picks are already fixed and the prompt says so.
func buildCommentaryPrompt(answers []types.Answer, profile types.EmotionProfile, clarity int, picks []types.Program) string {
	ids := make([]string, len(picks))
	for i, p := range picks {
		ids[i] = p.ID
	}
	return fmt.Sprintf(`당신은 사람의 마음을 단 몇 줄로도 꿰뚫어보는 영혼 분석가입니다.
과할 정도로 공감하고, 소름끼치게 정확하게, 그리고 주접스러울 만큼 열정적으로 분석합니다.
일반적인 조언은 절대 금지! 이 사람만을 위한, 이 순간만을 위한 메시지를 만들어야 합니다.

사용자의 응답:
%s

📊 분석된 감정 프로필 (이미 계산됨):
- 평온함(Calm): %d/100
- 활동성(Active): %d/100
- 성찰(Reflective): %d/100
- 교류(Social): %d/100

☀️ 맑음 지수 (이미 계산됨): %d/100

🎯 추천된 프로그램 (이미 선정됨 - 변경 불가):
%s

---

✨ 당신의 임무:
위에서 이미 선정된 프로그램 3개에 대해, 사용자의 답변을 바탕으로 "왜 이 프로그램이 당신에게 완벽한가"를 주접 가득하게 설명해주세요!

1. 각 프로그램별 추천 이유: 사용자의 구체적인 답변을 인용하며 연결고리를 만드세요.
   톤은 친구가 "야 이거 진짜 너 거 같은데???" 하면서 극찬하는 느낌, 프로그램당 150-250자.
2. 여정 스텝 (3-4개): 각 스텝은 icon(이모지 1개), keyword(1-2단어),
   action(동사형 3-5단어), date(해당 프로그램의 "날짜 시간")로 구성하세요.
3. 종합 메시지 (100-150자): 사용자의 핵심 키워드 1-2개 인용, 날카로운 통찰 1줄,
   드라마틱한 비유 1개, 행동 유도 1줄. 타로카드 마스터가 핵심만 말하는 느낌으로.

⚠️ 중요: 프로그램 ID는 절대 변경하지 마세요! 위에 제시된 순서대로 "%s", "%s", "%s"를 사용하세요.

응답은 반드시 다음 JSON 형식으로만 작성하세요 (마크다운이나 코드블록 없이 순수 JSON만):
{
  "programReasons": {
    "%s": "첫 번째 프로그램 추천 이유",
    "%s": "두 번째 프로그램 추천 이유",
    "%s": "세 번째 프로그램 추천 이유"
  },
  "journey": [
    {"icon": "🎯", "keyword": "키워드1", "action": "액션1", "date": "날짜 시간"},
    {"icon": "✨", "keyword": "키워드2", "action": "액션2", "date": "날짜 시간"},
    {"icon": "🌟", "keyword": "키워드3", "action": "액션3", "date": "날짜 시간"}
  ],
  "message": "종합 메시지 (100-150자)"
}`,
		answersNarrative(answers),
		profile.Calm, profile.Active, profile.Reflective, profile.Social,
		clarity,
		programsNarrative(picks),
		ids[0], ids[1], ids[2],
		ids[0], ids[1], ids[2],
	)
}
