package article

import "strings"

// ExtractSummary produces a bounded-length summary of content. It
// accumulates whole sentences while they fit within maxLength; when not
// even the first sentence fits, it hard-truncates with an ellipsis.
func ExtractSummary(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = 200
	}

	runes := []rune(content)
	if len(runes) <= maxLength {
		return content
	}

	sentences := strings.Split(content, ". ")
	var sb strings.Builder
	for _, sentence := range sentences {
		candidate := sentence + ". "
		if len([]rune(sb.String()+candidate)) > maxLength {
			break
		}
		sb.WriteString(candidate)
	}

	summary := strings.TrimSpace(sb.String())
	if summary != "" {
		return summary
	}

	return string(runes[:maxLength]) + "..."
}
