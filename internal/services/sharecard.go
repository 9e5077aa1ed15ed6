package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/types"
)

const (
	cardWidth  = 800
	cardHeight = 1200
)

type ShareCardService interface {
	// Render draws a saved analysis result as a shareable PNG.
	Render(ctx context.Context, row *types.AnalysisResult) ([]byte, error)
}

type shareCardService struct {
	log *logger.Logger

	titleFace   font.Face
	headingFace font.Face
	bodyFace    font.Face
}

// NewShareCardService needs a TTF with Hangul coverage. SHARE_CARD_FONT is
// required; the app treats a missing font as "feature off", not a crash.
func NewShareCardService(log *logger.Logger) (ShareCardService, error) {
	serviceLog := log.With("service", "ShareCardService")

	fontPath := strings.TrimSpace(os.Getenv("SHARE_CARD_FONT"))
	if fontPath == "" {
		return nil, fmt.Errorf("Env var SHARE_CARD_FONT is empty")
	}
	serviceLog.Info("Loading share card font", "font", fontPath)

	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(parsedFont, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
	}

	return &shareCardService{
		log:         serviceLog,
		titleFace:   face(64),
		headingFace: face(40),
		bodyFace:    face(28),
	}, nil
}

func (ss *shareCardService) Render(ctx context.Context, row *types.AnalysisResult) ([]byte, error) {
	if row == nil {
		return nil, fmt.Errorf("result required")
	}
	var result types.RecommendationResult
	if err := json.Unmarshal(row.Result, &result); err != nil {
		return nil, fmt.Errorf("decode stored result: %w", err)
	}

	dc := gg.NewContext(cardWidth, cardHeight)

	background := color.NRGBA{R: 0xE6, G: 0xF7, B: 0xFF, A: 0xFF}
	typeName := "나의 맑음"
	if result.ClarityType != nil {
		if parsed, err := parseHexColor(result.ClarityType.Color); err == nil {
			background = parsed
		}
		typeName = result.ClarityType.Name
	}
	dc.SetColor(background)
	dc.DrawRectangle(0, 0, cardWidth, cardHeight)
	dc.Fill()

	// Inner panel
	margin := 40.0
	dc.SetRGBA(1, 1, 1, 0.92)
	dc.DrawRoundedRectangle(margin, margin, cardWidth-2*margin, cardHeight-2*margin, 32)
	dc.Fill()

	ink := color.NRGBA{R: 0x22, G: 0x2A, B: 0x33, A: 0xFF}
	dc.SetColor(ink)

	y := 150.0
	dc.SetFontFace(ss.titleFace)
	dc.DrawStringAnchored(typeName, cardWidth/2, y, 0.5, 0.5)

	y += 110
	dc.SetFontFace(ss.headingFace)
	dc.DrawStringAnchored(fmt.Sprintf("맑음 지수 %d / 100", result.Clarity), cardWidth/2, y, 0.5, 0.5)

	y += 60
	dc.SetFontFace(ss.bodyFace)
	profile := result.UserEmotionProfile
	profileLine := fmt.Sprintf("평온 %d · 활동 %d · 성찰 %d · 교류 %d",
		profile.Calm, profile.Active, profile.Reflective, profile.Social)
	dc.DrawStringAnchored(profileLine, cardWidth/2, y, 0.5, 0.5)

	y += 90
	dc.SetFontFace(ss.headingFace)
	dc.DrawString("추천 프로그램", margin+40, y)
	dc.SetFontFace(ss.bodyFace)
	for _, p := range result.RecommendedPrograms {
		y += 70
		dc.DrawString("• "+p.Title, margin+40, y)
		y += 38
		dc.DrawString("  "+p.Date+" "+p.Time+" · "+p.Location, margin+40, y)
	}

	if msg := strings.TrimSpace(result.Message); msg != "" {
		y += 110
		dc.DrawStringWrapped(msg, cardWidth/2, y, 0.5, 0, cardWidth-2*margin-80, 1.6, gg.AlignCenter)
	}

	dc.SetFontFace(ss.bodyFace)
	dc.DrawStringAnchored("21회 서울와우북페스티벌", cardWidth/2, cardHeight-margin-40, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
