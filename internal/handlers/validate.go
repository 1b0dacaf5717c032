package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for user-submitted fields.
const (
	maxTitleLen    = 300
	maxContentLen  = 100_000
	maxCommentLen  = 10_000
	maxUsernameLen = 50
	minPasswordLen = 6
)

// validatePost checks post form inputs and returns the first error found.
func validatePost(title, content, topic string) string {
	if strings.TrimSpace(title) == "" {
		return "标题不能为空"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "标题过长"
	}
	if strings.TrimSpace(content) == "" {
		return "内容不能为空"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "内容过长"
	}
	if strings.TrimSpace(topic) == "" {
		return "请选择一个板块"
	}
	return ""
}

// validateComment checks comment content.
func validateComment(content string) string {
	if strings.TrimSpace(content) == "" {
		return "评论不能为空"
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return "评论过长"
	}
	return ""
}

// validateLogin checks login form inputs.
func validateLogin(email, password string) string {
	if strings.TrimSpace(email) == "" {
		return "邮箱不能为空"
	}
	if !strings.Contains(email, "@") {
		return "邮箱格式不正确"
	}
	if password == "" {
		return "密码不能为空"
	}
	return ""
}

// validateRegister checks registration form inputs.
func validateRegister(email, username, password, confirm string) string {
	if msg := validateLogin(email, password); msg != "" {
		return msg
	}
	if strings.TrimSpace(username) == "" {
		return "用户名不能为空"
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return "用户名过长"
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "密码至少需要6个字符"
	}
	if password != confirm {
		return "两次输入的密码不一致"
	}
	return ""
}
