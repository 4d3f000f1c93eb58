package translation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const DefaultDeepLURL = "https://api-free.deepl.com/v2/translate"

// Translator turns text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

type (
	DeepLConfig struct {
		URL        string
		APIKey     string
		SourceLang string
		Timeout    time.Duration
	}

	deepLTranslator struct {
		http       *resty.Client
		url        string
		apiKey     string
		sourceLang string
		logger     *zap.Logger
	}

	deepLResponse struct {
		Translations []struct {
			DetectedSourceLanguage string `json:"detected_source_language"`
			Text                   string `json:"text"`
		} `json:"translations"`
	}
)

// NewDeepLTranslator returns a translator that never fails on provider
// problems: a missing key, a transport error or a bad response all yield
// the original text. Only a cancelled context is reported.
func NewDeepLTranslator(cfg DeepLConfig, logger *zap.Logger) Translator {
	if cfg.URL == "" {
		cfg.URL = DefaultDeepLURL
	}
	if cfg.SourceLang == "" {
		cfg.SourceLang = "en"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &deepLTranslator{
		http:       resty.New().SetTimeout(cfg.Timeout),
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		sourceLang: cfg.SourceLang,
		logger:     logger,
	}
}

func (d *deepLTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if d.apiKey == "" {
		d.logger.Warn("deepl api key not configured, returning original text")
		return text, nil
	}

	var out deepLResponse
	resp, err := d.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"auth_key":     d.apiKey,
			"text":         text,
			"target_lang":  strings.ToUpper(targetLang),
			"source_lang":  strings.ToUpper(d.sourceLang),
			"tag_handling": "html",
		}).
		SetResult(&out).
		Post(d.url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return text, ctxErr
		}
		d.logger.Error("translation error", zap.Error(err))
		return text, nil
	}
	if resp.IsError() {
		d.logger.Error("deepl api error", zap.Int("status", resp.StatusCode()), zap.String("body", resp.String()))
		return text, nil
	}
	if len(out.Translations) == 0 {
		d.logger.Warn("deepl returned no translations, returning original text")
		return text, nil
	}

	translated := out.Translations[0].Text
	d.logger.Debug("translated text", zap.String("source", truncate(text, 50)), zap.String("translated", truncate(translated, 50)))
	return translated, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
