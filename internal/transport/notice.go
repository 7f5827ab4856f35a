package transport

import (
	"fmt"
	"net/url"

	"github.com/rpggio/proposta/internal/domain/generation"
)

const (
	noticeGenerationFailed = "generation-failed"
	noticeGenerationBusy   = "generation-busy"
)

// noticeURL builds the redirect target that shows a notice on the editor.
func noticeURL(code string, section generation.Section) string {
	q := url.Values{}
	q.Set("notice", code)
	if section != "" {
		q.Set("section", string(section))
	}
	return "/?" + q.Encode()
}

// noticeMessage turns a notice query into the text shown to the user.
func noticeMessage(q url.Values) string {
	section, _ := generation.ParseSection(q.Get("section"))
	switch q.Get("notice") {
	case noticeGenerationFailed:
		return fmt.Sprintf("Falha ao gerar texto para %s. Tente novamente em instantes.", section.Label())
	case noticeGenerationBusy:
		return "Já existe uma geração de texto em andamento. Aguarde a conclusão e tente novamente."
	default:
		return ""
	}
}
