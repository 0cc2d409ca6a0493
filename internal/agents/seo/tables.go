package seo

import "financehub/internal/domain"

// highCPCKeywords is the monitoring table. A real deployment would fetch
// this from SEMrush, Ahrefs or Google Keyword Planner; until that
// integration exists the list is fixed.
var highCPCKeywords = []domain.KeywordData{
	{
		Keyword:         "melhor cartão de crédito",
		Volume:          50000,
		Difficulty:      65,
		CPC:             8.50,
		Trend:           domain.TrendRising,
		RelatedKeywords: []string{"cartão sem anuidade", "cartão cashback", "cartão platinum"},
	},
	{
		Keyword:         "empréstimo pessoal online",
		Volume:          40000,
		Difficulty:      70,
		CPC:             12.30,
		Trend:           domain.TrendStable,
		RelatedKeywords: []string{"empréstimo rápido", "crédito pessoal", "empréstimo sem consulta"},
	},
	{
		Keyword:         "como investir em ações",
		Volume:          35000,
		Difficulty:      55,
		CPC:             6.80,
		Trend:           domain.TrendRising,
		RelatedKeywords: []string{"investir na bolsa", "ações para iniciantes", "corretora de valores"},
	},
	{
		Keyword:         "seguro de vida",
		Volume:          30000,
		Difficulty:      60,
		CPC:             15.20,
		Trend:           domain.TrendStable,
		RelatedKeywords: []string{"seguro de vida familiar", "seguro de vida preço", "melhor seguro de vida"},
	},
	{
		Keyword:         "financiamento imobiliário",
		Volume:          25000,
		Difficulty:      75,
		CPC:             18.90,
		Trend:           domain.TrendRising,
		RelatedKeywords: []string{"financiamento casa própria", "financiamento caixa", "simulador financiamento"},
	},
}

// backlinkCandidates is the outreach prospect list.
var backlinkCandidates = []domain.BacklinkOpportunity{
	{
		Domain:           "blogdoinvestidor.com",
		Authority:        45,
		Relevance:        90,
		ContactEmail:     "contato@blogdoinvestidor.com",
		OutreachTemplate: "guest_post_finance",
	},
	{
		Domain:           "financaspessoais.net",
		Authority:        38,
		Relevance:        95,
		ContactEmail:     "editor@financaspessoais.net",
		OutreachTemplate: "collaboration_proposal",
	},
	{
		Domain:           "investimentosinteligentes.com.br",
		Authority:        42,
		Relevance:        88,
		ContactEmail:     "parceria@investimentosinteligentes.com.br",
		OutreachTemplate: "content_exchange",
	},
}

// titleTemplates rewrite an article title around its target keyword.
var titleTemplates = []string{
	"%s: Guia Completo 2025",
	"Como %s - Passo a Passo",
	"%s: Tudo que Você Precisa Saber",
	"Melhores %s - Comparação Atualizada",
}

const descriptionTemplate = "Descubra tudo sobre %s. Guia completo com dicas práticas, comparações e análises atualizadas. Leia agora e tome as melhores decisões financeiras."

// outreachTemplates are the canned partnership emails. No email is actually
// sent; the chosen template name is recorded with the outreach row.
var outreachTemplates = map[string]string{
	"guest_post_finance": `Olá,

Sou do FinanceHub e admiro muito o conteúdo do seu blog sobre finanças.

Gostaria de propor uma parceria de guest post. Posso criar um artigo exclusivo sobre [TÓPICO] para seu público.

Em troca, seria possível incluir um link para nosso site?

Aguardo seu retorno!
`,
	"collaboration_proposal": `Olá,

Representando o FinanceHub, gostaria de propor uma colaboração.

Podemos trocar artigos ou fazer menções cruzadas em nossos conteúdos sobre finanças.

Que tal conversarmos sobre as possibilidades?
`,
	"content_exchange": `Olá,

Notei que produzimos conteúdo similar sobre finanças pessoais.

Que tal uma troca de conteúdo? Posso escrever para vocês e vice-versa.

Interessados?
`,
}

// directoryURLs are the free directories recent articles get submitted to.
var directoryURLs = []string{
	"https://www.dmoz-odp.org/",
	"https://www.jayde.com/",
	"https://www.gimpsy.com/",
	"https://www.exactseek.com/",
	"https://www.pegasusdirectory.com/",
}
