package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/proposta/internal/domain/generation"
	"github.com/rpggio/proposta/internal/domain/proposal"
	"github.com/rpggio/proposta/internal/render"
)

func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	inFlight := ""
	if section, ok := s.generation.InFlight(); ok {
		inFlight = string(section)
	}
	page := render.NewEditorPage(s.doc.Snapshot(), s.taxRate, inFlight, noticeMessage(r.URL.Query()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Editor(w, page); err != nil {
		s.logger.Error("render editor failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// applyForm parses the submitted form and applies it, followed by extra, as
// one step. Buttons that post the whole form (add, remove, generate) go
// through here so nothing typed is lost. Fields changed since the form was
// rendered, such as a freshly generated section, keep their current value.
func (s *Server) applyForm(w http.ResponseWriter, r *http.Request, extra ...func() proposal.Edit) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	form := r.PostForm
	s.doc.ApplyAfter(formRevision(form), func(stale func(proposal.Field) bool) []proposal.Edit {
		edits := decodeEdits(form, stale)
		for _, e := range extra {
			edits = append(edits, e())
		}
		return edits
	})
	return true
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if s.applyForm(w, r) {
		redirectHome(w, r)
	}
}

func (s *Server) handleAddService(w http.ResponseWriter, r *http.Request) {
	add := func() proposal.Edit { return proposal.AddServiceEdit(s.doc.NextServiceID()) }
	if s.applyForm(w, r, add) {
		redirectHome(w, r)
	}
}

func (s *Server) handleRemoveService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid service id", http.StatusBadRequest)
		return
	}
	remove := func() proposal.Edit { return proposal.RemoveServiceEdit(id) }
	if s.applyForm(w, r, remove) {
		redirectHome(w, r)
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.doc.Reset()
	redirectHome(w, r)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	section, ok := generation.ParseSection(chi.URLParam(r, "section"))
	if !ok {
		http.Error(w, "unknown section", http.StatusNotFound)
		return
	}
	if !s.applyForm(w, r) {
		return
	}

	// The upstream call runs to completion even if the browser goes away.
	ctx := context.WithoutCancel(r.Context())
	if _, err := s.generation.Generate(ctx, s.doc, section); err != nil {
		code := noticeGenerationFailed
		if errors.Is(err, generation.ErrInProgress) {
			code = noticeGenerationBusy
		}
		s.logger.Warn("generate section failed", "section", string(section), "error", err)
		http.Redirect(w, r, noticeURL(code, section), http.StatusSeeOther)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handlePrint(w http.ResponseWriter, _ *http.Request) {
	page := render.PrintPage{
		Preview:       render.NewPreview(s.doc.Proposal(), s.taxRate),
		DelayMillis:   s.printDelay.Milliseconds(),
		StylesheetURL: "/static/proposal.css",
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Print(w, page); err != nil {
		s.logger.Error("render print document failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (s *Server) handlePDF(w http.ResponseWriter, _ *http.Request) {
	p := s.doc.Proposal()

	var buf bytes.Buffer
	if err := render.PDF(&buf, render.NewPreview(p, s.taxRate)); err != nil {
		s.logger.Error("render pdf failed", "error", err)
		http.Error(w, "Não foi possível gerar o PDF da proposta.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdfFilename(p.ProposalNumber)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

// ProposalResponse is the JSON view of the current snapshot.
type ProposalResponse struct {
	SessionID  string            `json:"session_id"`
	Revision   int64             `json:"revision"`
	Proposal   proposal.Proposal `json:"proposal"`
	Totals     proposal.Totals   `json:"totals"`
	Generating string            `json:"generating,omitempty"`
}

func (s *Server) handleAPIProposal(w http.ResponseWriter, _ *http.Request) {
	snap := s.doc.Snapshot()
	resp := ProposalResponse{
		SessionID: snap.SessionID,
		Revision:  snap.Revision,
		Proposal:  snap.Proposal,
		Totals:    proposal.ComputeTotals(snap.Proposal, s.taxRate),
	}
	if section, ok := s.generation.InFlight(); ok {
		resp.Generating = string(section)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func pdfFilename(number string) string {
	name := unsafeFilename.ReplaceAllString(number, "-")
	if name == "" || name == "-" {
		return "proposta.pdf"
	}
	return "proposta-" + name + ".pdf"
}
