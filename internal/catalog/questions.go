package catalog

import "github.com/wowbook/clarity-backend/internal/types"

// Question IDs the score calculator keys on. Everything else only feeds
// the emotion profile and the axis classifier.
const (
	QuestionMood     = "q9"
	QuestionConcern  = "q10"
	QuestionCoping   = "q11"
	QuestionNeed     = "q12"
	QuestionFreeNote = "q13"
)

var questions = []types.Question{
	// I/O 축: 맑아지는 공간 (혼자 vs 함께)
	{
		ID:          "q1",
		Title:       "갑자기 비가 내리기 시작했어요.\n당신은?",
		Description: "가장 끌리는 것을 선택해주세요.",
		Kind:        types.QuestionSingle,
		Step:        1,
		Axis:        types.AxisSpace,
		Options: []types.Option{
			{ID: "q1-a1", Text: "🌧️ 혼자 창가에 앉아 빗소리를 듣는다", Value: "q1-a1", Weight: 2, Emotion: types.EmotionCalm, AxisLetter: "I"},
			{ID: "q1-a2", Text: "☔ 우산 쓰고 누군가와 함께 비를 맞으러 나간다", Value: "q1-a2", Weight: 2, Emotion: types.EmotionSocial, AxisLetter: "O"},
			{ID: "q1-a3", Text: "📚 혼자 이불 속에서 빗소리 들으며 책을 읽는다", Value: "q1-a3", Weight: 1, Emotion: types.EmotionCalm, AxisLetter: "I"},
			{ID: "q1-a4", Text: "🍵 친구 불러서 빗소리 들으며 수다를 떤다", Value: "q1-a4", Weight: 1, Emotion: types.EmotionSocial, AxisLetter: "O"},
		},
	},
	{
		ID:          "q2",
		Title:       "당신이 더 좋아하는\n날씨는?",
		Description: "더 편안하고 좋은 날씨를 선택해주세요.",
		Kind:        types.QuestionSingle,
		Step:        2,
		Axis:        types.AxisSpace,
		Options: []types.Option{
			{ID: "q2-a1", Text: "🌫️ 안개 낀 아침 - 세상이 조용하고 나만 있는 느낌", Value: "q2-a1", Weight: 2, Emotion: types.EmotionReflective, AxisLetter: "I"},
			{ID: "q2-a2", Text: "☀️ 쨍한 맑은 날 - 모두가 밖에 나와 있는 느낌", Value: "q2-a2", Weight: 2, Emotion: types.EmotionSocial, AxisLetter: "O"},
			{ID: "q2-a3", Text: "🌙 별이 쏟아지는 밤 - 혼자 하늘을 보는 시간", Value: "q2-a3", Weight: 1, Emotion: types.EmotionReflective, AxisLetter: "I"},
			{ID: "q2-a4", Text: "🌈 비 온 뒤 무지개 - 사람들이 함께 보는 순간", Value: "q2-a4", Weight: 1, Emotion: types.EmotionSocial, AxisLetter: "O"},
		},
	},

	// B/G 축: 맑아지는 에너지 (고요 vs 역동)
	{
		ID:          "q3",
		Title:       "창문을 열었어요.\n어떤 바람이 불어오길 바라나요?",
		Description: "더 좋은 바람을 선택해주세요.",
		Kind:        types.QuestionSingle,
		Step:        3,
		Axis:        types.AxisEnergy,
		Options: []types.Option{
			{ID: "q3-a1", Text: "🍃 살랑살랑 부드러운 산들바람", Value: "q3-a1", Weight: 2, Emotion: types.EmotionCalm, AxisLetter: "B"},
			{ID: "q3-a2", Text: "💨 휘익 지나가는 시원한 강풍", Value: "q3-a2", Weight: 2, Emotion: types.EmotionActive, AxisLetter: "G"},
			{ID: "q3-a3", Text: "🌾 나뭇잎 흔들리는 정도의 잔잔한 바람", Value: "q3-a3", Weight: 1, Emotion: types.EmotionCalm, AxisLetter: "B"},
			{ID: "q3-a4", Text: "🌪️ 머리카락 날리는 세찬 바람", Value: "q3-a4", Weight: 1, Emotion: types.EmotionActive, AxisLetter: "G"},
		},
	},
	{
		ID:          "q4",
		Title:       "4개의 계절 중\n당신과 가장 닮은 계절은?",
		Description: "여러 개 선택 가능 (최대 2개)",
		Kind:        types.QuestionMultiple,
		Step:        4,
		Axis:        types.AxisEnergy,
		MaxSelect:   2,
		Options: []types.Option{
			{ID: "q4-a1", Text: "🍂 가을 - 차분하게 가라앉으며 깊어지는", Value: "q4-a1", Weight: 1, Emotion: types.EmotionReflective, AxisLetter: "B"},
			{ID: "q4-a2", Text: "❄️ 겨울 - 고요하고 평화롭게 정화되는", Value: "q4-a2", Weight: 1, Emotion: types.EmotionCalm, AxisLetter: "B"},
			{ID: "q4-a3", Text: "🌸 봄 - 활기차게 피어나고 시작되는", Value: "q4-a3", Weight: 1, Emotion: types.EmotionActive, AxisLetter: "G"},
			{ID: "q4-a4", Text: "☀️ 여름 - 뜨겁게 타오르며 활발한", Value: "q4-a4", Weight: 1, Emotion: types.EmotionActive, AxisLetter: "G"},
			{ID: "q4-a5", Text: "🌦️ 환절기 - 변화하며 움직이는", Value: "q4-a5", Weight: 1, Emotion: types.EmotionActive, AxisLetter: "G"},
		},
	},

	// S/L 축: 맑아지는 방식 (깊이 vs 넓이)
	{
		ID:          "q5",
		Title:       "밤하늘을 올려다보고 있어요.\n무엇이 보이나요?",
		Description: "더 공감되는 것을 선택해주세요.",
		Kind:        types.QuestionSingle,
		Step:        5,
		Axis:        types.AxisFocus,
		Options: []types.Option{
			{ID: "q5-a1", Text: "⭐ 하나의 별을 집중해서 보며 그 빛의 의미를 생각한다", Value: "q5-a1", Weight: 2, Emotion: types.EmotionReflective, AxisLetter: "S"},
			{ID: "q5-a2", Text: "🌌 온 하늘의 별들을 보며 우주 전체를 상상한다", Value: "q5-a2", Weight: 2, Emotion: types.EmotionReflective, AxisLetter: "L"},
			{ID: "q5-a3", Text: "🔭 별자리 하나를 찾아 완벽하게 이해하고 싶다", Value: "q5-a3", Weight: 1, Emotion: types.EmotionReflective, AxisLetter: "S"},
			{ID: "q5-a4", Text: "🌠 여러 별자리의 신화를 연결하며 상상한다", Value: "q5-a4", Weight: 1, Emotion: types.EmotionSocial, AxisLetter: "L"},
		},
	},
	{
		ID:          "q6",
		Title:       "오늘은 날씨가 정말 좋아요.\n당신의 선택은?",
		Description: "더 끌리는 것을 선택해주세요.",
		Kind:        types.QuestionSingle,
		Step:        6,
		Axis:        types.AxisFocus,
		Options: []types.Option{
			{ID: "q6-a1", Text: "🌳 한 곳에 오래 앉아 햇살과 바람을 온전히 느낀다", Value: "q6-a1", Weight: 2, Emotion: types.EmotionCalm, AxisLetter: "S"},
			{ID: "q6-a2", Text: "🚴 여러 장소를 돌아다니며 다양한 풍경을 본다", Value: "q6-a2", Weight: 2, Emotion: types.EmotionActive, AxisLetter: "L"},
			{ID: "q6-a3", Text: "🪑 벤치에 앉아 구름 하나가 흘러가는 걸 끝까지 본다", Value: "q6-a3", Weight: 1, Emotion: types.EmotionReflective, AxisLetter: "S"},
			{ID: "q6-a4", Text: "📸 이 풍경 저 풍경 사진 찍으며 여기저기 구경한다", Value: "q6-a4", Weight: 1, Emotion: types.EmotionSocial, AxisLetter: "L"},
		},
	},

	// C/W 축: 맑음의 언어 (이성 vs 감성)
	{
		ID:          "q7",
		Title:       "내일 비가 온대요.\n당신의 반응은?",
		Description: "더 공감되는 것을 선택해주세요.",
		Kind:        types.QuestionSingle,
		Step:        7,
		Axis:        types.AxisLanguage,
		Options: []types.Option{
			{ID: "q7-a1", Text: "📱 \"강수확률 몇 %지? 우산 챙겨야 하나?\"", Value: "q7-a1", Weight: 2, Emotion: types.EmotionReflective, AxisLetter: "C"},
			{ID: "q7-a2", Text: "💭 \"아... 비 오는 날 특유의 그 감성...\"", Value: "q7-a2", Weight: 2, Emotion: types.EmotionCalm, AxisLetter: "W"},
			{ID: "q7-a3", Text: "🤔 \"저기압이 오는구나. 기압 변화 때문에...\"", Value: "q7-a3", Weight: 1, Emotion: types.EmotionReflective, AxisLetter: "C"},
			{ID: "q7-a4", Text: "☔ \"비 냄새 좋아. 우산 쓰고 걷고 싶다\"", Value: "q7-a4", Weight: 1, Emotion: types.EmotionSocial, AxisLetter: "W"},
		},
	},
	{
		ID:          "q8",
		Title:       "가장 기억에 남는\n날씨가 있나요?",
		Description: "여러 개 선택 가능 (최대 2개)",
		Kind:        types.QuestionMultiple,
		Step:        8,
		Axis:        types.AxisLanguage,
		MaxSelect:   2,
		Options: []types.Option{
			{ID: "q8-a1", Text: "☀️ \"일출 시각이 완벽했던 그 여행의 타이밍\"", Value: "q8-a1", Weight: 1, Emotion: types.EmotionReflective, AxisLetter: "C"},
			{ID: "q8-a2", Text: "🌡️ \"영하로 떨어진 순간의 그 청명함\"", Value: "q8-a2", Weight: 1, Emotion: types.EmotionReflective, AxisLetter: "C"},
			{ID: "q8-a3", Text: "🌧️ \"소나기 맞으며 울었던 그날의 기분\"", Value: "q8-a3", Weight: 1, Emotion: types.EmotionSocial, AxisLetter: "W"},
			{ID: "q8-a4", Text: "🌅 \"노을 보며 누군가와 나눴던 그 대화\"", Value: "q8-a4", Weight: 1, Emotion: types.EmotionSocial, AxisLetter: "W"},
			{ID: "q8-a5", Text: "❄️ \"첫눈 내릴 때의 그 설레는 공기\"", Value: "q8-a5", Weight: 1, Emotion: types.EmotionCalm, AxisLetter: "W"},
		},
	},

	// 마음 상태: 맑음 지수 계산에 쓰이는 문항들
	{
		ID:          QuestionMood,
		Title:       "지금 당신의 마음 날씨는\n어떤가요?",
		Description: "가장 가까운 날씨를 선택해주세요.",
		Kind:        types.QuestionSingle,
		Step:        9,
		Options: []types.Option{
			{ID: "q9-a1", Text: "☀️ 맑음 - 마음이 가볍고 환해요", Value: "sunny", Weight: 1, Emotion: types.EmotionActive},
			{ID: "q9-a2", Text: "⛅ 구름 조금 - 대체로 괜찮은 편이에요", Value: "partly-cloudy", Weight: 1, Emotion: types.EmotionSocial},
			{ID: "q9-a3", Text: "☁️ 흐림 - 마음이 좀 무거워요", Value: "cloudy", Weight: 1, Emotion: types.EmotionCalm},
			{ID: "q9-a4", Text: "🌧️ 비 - 가라앉고 축축한 기분이에요", Value: "rainy", Weight: 1, Emotion: types.EmotionReflective},
			{ID: "q9-a5", Text: "⛈️ 폭풍 - 마음이 요동치고 있어요", Value: "stormy", Weight: 1, Emotion: types.EmotionReflective},
		},
	},
	{
		ID:          QuestionConcern,
		Title:       "요즘 마음을 가장\n무겁게 하는 것은?",
		Description: "하나를 선택해주세요.",
		Kind:        types.QuestionSingle,
		Step:        10,
		Options: []types.Option{
			{ID: "q10-a1", Text: "😮‍💨 지친 몸과 마음", Value: "fatigue", Weight: 1, Emotion: types.EmotionCalm},
			{ID: "q10-a2", Text: "🌫️ 지난 기억의 상처", Value: "trauma", Weight: 1, Emotion: types.EmotionReflective},
			{ID: "q10-a3", Text: "🧭 앞날에 대한 막막함", Value: "future", Weight: 1, Emotion: types.EmotionReflective},
			{ID: "q10-a4", Text: "👥 사람 사이의 어려움", Value: "relationship", Weight: 1, Emotion: types.EmotionSocial},
			{ID: "q10-a5", Text: "🪞 나를 잘 모르겠는 마음", Value: "self", Weight: 1, Emotion: types.EmotionReflective},
		},
	},
	{
		ID:          QuestionCoping,
		Title:       "마음이 흐릴 때\n당신의 방법은?",
		Description: "여러 개 선택 가능",
		Kind:        types.QuestionMultiple,
		Step:        11,
		MaxSelect:   4,
		Options: []types.Option{
			{ID: "q11-a1", Text: "🚶 천천히 오래 걷기", Value: "walk", Weight: 1, Emotion: types.EmotionCalm},
			{ID: "q11-a2", Text: "🎧 음악에 파묻히기", Value: "music", Weight: 1, Emotion: types.EmotionCalm},
			{ID: "q11-a3", Text: "💬 가까운 사람과 이야기하기", Value: "talk", Weight: 1, Emotion: types.EmotionSocial},
			{ID: "q11-a4", Text: "✍️ 마음을 글로 적어보기", Value: "write", Weight: 1, Emotion: types.EmotionReflective},
			{ID: "q11-a5", Text: "🏃 몸을 움직여 땀 흘리기", Value: "exercise", Weight: 1, Emotion: types.EmotionActive},
			{ID: "q11-a6", Text: "🛏️ 아무것도 하지 않고 쉬기", Value: "rest", Weight: 1, Emotion: types.EmotionCalm},
		},
	},
	{
		ID:          QuestionNeed,
		Title:       "이번 축제에서\n가장 얻고 싶은 것은?",
		Description: "하나를 선택해주세요.",
		Kind:        types.QuestionSingle,
		Step:        12,
		Options: []types.Option{
			{ID: "q12-a1", Text: "🕊️ 평온 - 고요하게 쉬어가는 시간", Value: "peace", Weight: 1, Emotion: types.EmotionCalm},
			{ID: "q12-a2", Text: "💡 통찰 - 생각이 맑아지는 순간", Value: "insight", Weight: 1, Emotion: types.EmotionReflective},
			{ID: "q12-a3", Text: "🔥 동력 - 움직일 힘과 계기", Value: "action", Weight: 1, Emotion: types.EmotionActive},
			{ID: "q12-a4", Text: "🤝 연결 - 사람들과 나누는 온기", Value: "connection", Weight: 1, Emotion: types.EmotionSocial},
		},
	},
	{
		ID:          QuestionFreeNote,
		Title:       "지금 마음에 떠오르는 생각을\n자유롭게 적어주세요.",
		Description: "짧아도 좋고, 길어도 좋아요.",
		Kind:        types.QuestionFreeText,
		Step:        13,
	},
}
