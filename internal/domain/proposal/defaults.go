package proposal

import "time"

const isoDate = "2006-01-02"

// validityDays is how long the default proposal stays valid.
const validityDays = 30

// Default returns the example proposal shown when the application starts.
// Dates are derived from now in UTC.
func Default(now time.Time) Proposal {
	today := now.UTC()
	return Proposal{
		ProposalNumber: "PROP-001",
		IssueDate:      today.Format(isoDate),
		ValidUntil:     today.AddDate(0, 0, validityDays).Format(isoDate),
		ProjectTitle:   "Desenvolvimento de Novo Website Corporativo",
		Client: ContactInfo{
			Name:        "João da Silva",
			CompanyName: "Empresa Exemplo Ltda.",
			Address:     "Rua das Flores, 123, São Paulo, SP",
			Email:       "joao.silva@exemplo.com",
		},
		Provider: ContactInfo{
			Name:        "Ana Pereira",
			CompanyName: "Sua Agência Criativa",
			Address:     "Avenida Principal, 456, Rio de Janeiro, RJ",
			Email:       "ana.pereira@suaagencia.com",
		},
		Introduction: "Prezado(a) João da Silva,\n\n" +
			"Agradecemos a oportunidade de apresentar esta proposta para o desenvolvimento do novo website corporativo da Empresa Exemplo Ltda. " +
			"Estamos confiantes de que nossa expertise pode ajudar a alcançar seus objetivos online.",
		Services: []ServiceItem{
			{ID: 1, Description: "Design UI/UX e Prototipagem", Quantity: 1, UnitPrice: 2500},
			{ID: 2, Description: "Desenvolvimento Frontend (React)", Quantity: 1, UnitPrice: 4000},
			{ID: 3, Description: "Desenvolvimento Backend (Node.js)", Quantity: 1, UnitPrice: 4500},
			{ID: 4, Description: "Hospedagem e Manutenção (Anual)", Quantity: 1, UnitPrice: 1200},
		},
		TermsAndConditions: "1. Pagamento: 50% adiantado, 50% na entrega.\n" +
			"2. Prazo de Entrega: 60 dias a partir da data de início.\n" +
			"3. Alterações: Alterações extras no escopo serão orçadas separadamente.\n" +
			"4. Confidencialidade: Ambas as partes concordam em manter todas as informações confidenciais.",
	}
}
