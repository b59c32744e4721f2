package tools

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jonwraymond/toolgate/cache"
)

// Translation is the result shape shared by both translation tools.
type Translation struct {
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	API            string `json:"api"`
}

type lingvaResponse struct {
	Translation string `json:"translation"`
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus int `json:"responseStatus"`
}

// translationParams extracts and validates the shared translation parameters.
func translationParams(params map[string]any) (text, source, target string, err error) {
	text = stringParam(params, "text")
	if text == "" {
		return "", "", "", errors.New("Text parameter is required")
	}
	source = stringParamDefault(params, "sourceLang", DefaultSourceLang)
	target = stringParamDefault(params, "targetLang", DefaultTargetLang)
	return text, source, target, nil
}

func (s *Set) lingvaTranslateHandler(ctx context.Context, params map[string]any) (any, error) {
	text, source, target, err := translationParams(params)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/%s/%s/%s",
		s.lingvaBaseURL, url.PathEscape(source), url.PathEscape(target), url.PathEscape(text))

	var resp lingvaResponse
	if err := s.getJSON(ctx, u, nil, &resp); err != nil {
		return nil, fmt.Errorf("Lingva API error: %v", err)
	}

	return &Translation{
		OriginalText:   text,
		TranslatedText: resp.Translation,
		SourceLanguage: source,
		TargetLanguage: target,
		API:            "Lingva",
	}, nil
}

func (s *Set) myMemoryTranslateHandler(ctx context.Context, params map[string]any) (any, error) {
	text, source, target, err := translationParams(params)
	if err != nil {
		return nil, err
	}

	key := cache.TranslationKey(source, target, text)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	u := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		s.myMemoryBaseURL, url.QueryEscape(text), url.QueryEscape(source+"|"+target))

	var resp myMemoryResponse
	if err := s.getJSON(ctx, u, nil, &resp); err != nil {
		return nil, fmt.Errorf("MyMemory API error: %v", err)
	}
	if resp.ResponseData.TranslatedText == "" {
		return nil, errors.New("Invalid translation response")
	}

	result := &Translation{
		OriginalText:   text,
		TranslatedText: resp.ResponseData.TranslatedText,
		SourceLanguage: source,
		TargetLanguage: target,
		API:            "MyMemory",
	}

	// The check above and this store are not atomic: concurrent identical
	// requests may both miss and both call upstream. Last write wins, and
	// both writes carry equivalent content.
	if s.cache != nil && s.policy.ShouldCache() {
		_ = s.cache.Set(ctx, key, result, s.policy.EffectiveTTL(0))
	}

	return result, nil
}
