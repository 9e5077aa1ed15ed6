package services

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/wowbook/clarity-backend/internal/catalog"
	"github.com/wowbook/clarity-backend/internal/clients/gemini"
	"github.com/wowbook/clarity-backend/internal/platform/apierr"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/repos"
	"github.com/wowbook/clarity-backend/internal/types"
)

const maxKeywords = 10

type KeywordService interface {
	// Extract summarizes diary feedback for one program into keywords.
	Extract(ctx context.Context, programID string) (*types.KeywordAnalysis, error)
}

type keywordService struct {
	db        *gorm.DB
	log       *logger.Logger
	diaryRepo repos.DiaryRepo
	ai        gemini.Client
}

func NewKeywordService(db *gorm.DB, log *logger.Logger, diaryRepo repos.DiaryRepo, ai gemini.Client) KeywordService {
	serviceLog := log.With("service", "KeywordService")
	return &keywordService{db: db, log: serviceLog, diaryRepo: diaryRepo, ai: ai}
}

func (ks *keywordService) Extract(ctx context.Context, programID string) (*types.KeywordAnalysis, error) {
	program, ok := catalog.ProgramByID(programID)
	if !ok {
		return nil, apierr.New(http.StatusNotFound, "unknown_program", fmt.Errorf("unknown program %q", programID))
	}

	entries, err := ks.diaryRepo.ListByProgram(ctx, nil, programID)
	if err != nil {
		return nil, err
	}
	contents := make([]string, 0, len(entries))
	for _, entry := range entries {
		if text := strings.TrimSpace(entry.Content); text != "" {
			contents = append(contents, text)
		}
	}
	if len(contents) == 0 {
		return &types.KeywordAnalysis{ProgramID: programID, Keywords: []types.KeywordCount{}}, nil
	}

	if ks.ai != nil {
		analysis, err := ks.extractWithAI(ctx, program.Title, contents)
		if err == nil {
			analysis.ProgramID = programID
			return analysis, nil
		}
		ks.log.Warn("AI keyword extraction failed, falling back to word counts", "program_id", programID, "error", err)
	}

	return &types.KeywordAnalysis{
		ProgramID: programID,
		Keywords:  countWords(contents),
	}, nil
}

func (ks *keywordService) extractWithAI(ctx context.Context, programTitle string, contents []string) (*types.KeywordAnalysis, error) {
	prompt := fmt.Sprintf(`다음은 "%s" 프로그램에 참여한 관객들이 남긴 날씨 일기입니다.

%s

이 피드백에서 핵심 키워드를 최대 %d개 추출하고, 각 키워드가 등장하는 일기 수를 세어주세요.
전체 분위기를 한 문장으로 요약해주세요.

응답은 반드시 다음 JSON 형식으로만 작성하세요:
{
  "keywords": [{"word": "키워드", "count": 3}],
  "summary": "전체 분위기 요약 한 문장"
}`, programTitle, strings.Join(contents, "\n---\n"), maxKeywords)

	var analysis types.KeywordAnalysis
	if err := ks.ai.GenerateJSON(ctx, "", prompt, &analysis); err != nil {
		return nil, err
	}
	if len(analysis.Keywords) > maxKeywords {
		analysis.Keywords = analysis.Keywords[:maxKeywords]
	}
	return &analysis, nil
}

// countWords is the deterministic fallback: naive whitespace tokens, two
// runes or longer, ranked by frequency.
func countWords(contents []string) []types.KeywordCount {
	counts := map[string]int{}
	for _, text := range contents {
		for _, word := range strings.Fields(text) {
			word = strings.Trim(word, ".,!?~…\"'()[]")
			if len([]rune(word)) < 2 {
				continue
			}
			counts[word]++
		}
	}
	keywords := make([]types.KeywordCount, 0, len(counts))
	for word, count := range counts {
		keywords = append(keywords, types.KeywordCount{Word: word, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
