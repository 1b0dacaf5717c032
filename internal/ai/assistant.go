// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Fallback is returned to the client whenever the active provider fails.
const Fallback = "AI助手暂时不可用，请稍后再试。"

// Assistant provides the forum writing helpers on top of a provider
// registry. Provider failures are logged and degraded to safe
// fallbacks rather than surfaced to the caller.
type Assistant struct {
	registry *Registry
	logger   *slog.Logger
}

// NewAssistant creates an Assistant backed by the given registry.
func NewAssistant(registry *Registry, logger *slog.Logger) *Assistant {
	return &Assistant{registry: registry, logger: logger}
}

// Response is the common reply shape for the writing helpers.
type Response struct {
	Content     string   `json:"content"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ModerationResult holds the parsed verdict of a moderation check.
type ModerationResult struct {
	IsAppropriate bool     `json:"isAppropriate"`
	Reason        string   `json:"reason,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// PostSuggestions asks the active provider to help polish a post
// draft. The provider's full answer is returned as content.
func (a *Assistant) PostSuggestions(ctx context.Context, title, content string) Response {
	systemPrompt := "你是一个论坛写作助手。用户正在撰写帖子，请针对标题和内容给出具体的改进建议，帮助作者把帖子写得更清晰、更有吸引力。用中文回答。"
	userPrompt := fmt.Sprintf("标题：%s\n\n内容：%s", title, content)

	text, err := a.generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return Response{Content: Fallback}
	}
	return Response{Content: text}
}

// ReplySuggestions produces up to three candidate replies to a post.
// Each non-trivial line of the provider answer becomes one suggestion.
func (a *Assistant) ReplySuggestions(ctx context.Context, postTitle, postContent string) Response {
	systemPrompt := "你是一个论坛回复助手。请针对下面的帖子生成三条不同角度的回复建议，每条回复单独一行，不要编号。用中文回答。"
	userPrompt := fmt.Sprintf("帖子标题：%s\n\n帖子内容：%s", postTitle, postContent)

	text, err := a.generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return Response{Content: Fallback}
	}

	suggestions := collectLines(text, 10, 3)
	return Response{Content: text, Suggestions: suggestions}
}

// TitleSuggestions produces up to five candidate titles for a draft.
func (a *Assistant) TitleSuggestions(ctx context.Context, content string) Response {
	systemPrompt := "你是一个论坛标题助手。请根据下面的内容生成五个简洁有吸引力的标题，每个标题单独一行，不要编号。用中文回答。"

	text, err := a.generate(ctx, systemPrompt, content)
	if err != nil {
		return Response{Content: Fallback}
	}

	suggestions := collectLines(text, 5, 5)
	return Response{Content: text, Suggestions: suggestions}
}

// Moderate asks the provider whether content is appropriate for the
// forum and parses its structured verdict. On any provider failure the
// content is allowed through: moderation is advisory, not a gate.
func (a *Assistant) Moderate(ctx context.Context, content string) ModerationResult {
	systemPrompt := "你是一个论坛内容审核助手。请判断下面的内容是否适合发布在社区论坛。严格按照以下格式回答：\n合适: 是或否\n原因: 简要说明\n建议: 修改建议，多条用；分隔"

	text, err := a.generate(ctx, systemPrompt, content)
	if err != nil {
		return ModerationResult{IsAppropriate: true}
	}
	return parseModeration(text)
}

func (a *Assistant) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	provider, err := a.registry.Active()
	if err != nil {
		a.logger.Warn("ai request with no active provider", "error", err)
		return "", err
	}

	text, err := provider.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		a.logger.Error("ai generation failed", "provider", provider.Name(), "error", err)
		return "", err
	}
	return text, nil
}

// collectLines keeps lines longer than minRunes runes, up to max.
func collectLines(text string, minRunes, max int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= minRunes {
			continue
		}
		out = append(out, line)
		if len(out) == max {
			break
		}
	}
	return out
}

// parseModeration extracts the verdict, reason and suggestions from a
// provider answer following the prompted format. Lines that do not
// match are ignored, and a missing verdict line means appropriate.
func parseModeration(text string) ModerationResult {
	result := ModerationResult{IsAppropriate: true}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "合适:"), strings.HasPrefix(line, "合适："):
			verdict := strings.TrimSpace(trimLabel(line, "合适"))
			result.IsAppropriate = !strings.Contains(verdict, "否")
		case strings.HasPrefix(line, "原因:"), strings.HasPrefix(line, "原因："):
			result.Reason = strings.TrimSpace(trimLabel(line, "原因"))
		case strings.HasPrefix(line, "建议:"), strings.HasPrefix(line, "建议："):
			raw := strings.TrimSpace(trimLabel(line, "建议"))
			for _, s := range strings.Split(raw, "；") {
				if s = strings.TrimSpace(s); s != "" {
					result.Suggestions = append(result.Suggestions, s)
				}
			}
		}
	}

	return result
}

func trimLabel(line, label string) string {
	line = strings.TrimPrefix(line, label)
	line = strings.TrimPrefix(line, ":")
	line = strings.TrimPrefix(line, "：")
	return line
}
