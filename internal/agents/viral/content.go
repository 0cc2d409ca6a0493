package viral

import "financehub/internal/domain"

// financialTrends stands in for a live trend feed (Google Trends, social
// APIs). The list is fixed until such an integration exists.
var financialTrends = []domain.TrendingTopic{
	{
		Keyword:      "bitcoin alta",
		Volume:       150000,
		Sentiment:    domain.SentimentPositive,
		RelatedTerms: []string{"criptomoedas", "investimento", "alta", "lucro"},
	},
	{
		Keyword:      "taxa selic",
		Volume:       80000,
		Sentiment:    domain.SentimentNeutral,
		RelatedTerms: []string{"juros", "poupança", "investimentos", "economia"},
	},
	{
		Keyword:      "cartão sem anuidade",
		Volume:       60000,
		Sentiment:    domain.SentimentPositive,
		RelatedTerms: []string{"cartão de crédito", "gratuito", "benefícios", "cashback"},
	},
	{
		Keyword:      "inflação 2025",
		Volume:       90000,
		Sentiment:    domain.SentimentNegative,
		RelatedTerms: []string{"preços", "economia", "poder de compra", "investimentos"},
	},
}

// memeTemplates map a trend keyword into a caption. %s receives the keyword.
var memeTemplates = []string{
	"Drake rejeitando: Deixar dinheiro parado na conta\nDrake aprovando: %s",
	"Namorada: Poupança tradicional\nNamorado: Eu\nOutra mulher: %s",
	"Quando você vê %s mas já está preparado financeiramente",
	"Nível 1: Guardar dinheiro no colchão\nNível 2: Poupança\nNível 3: CDB\nNível 4: %s",
}

var memePlatforms = []string{"instagram", "tiktok", "twitter", "facebook"}

type infographicTopic struct {
	Title string
	Kind  string
	Data  any
}

var infographicTopics = []infographicTopic{
	{
		Title: "Como a Taxa Selic Afeta Seus Investimentos",
		Kind:  "comparison",
		Data: map[string]string{
			"current_rate":      "10.75%",
			"impact_on_savings": "+8%",
			"impact_on_cdb":     "+12%",
			"impact_on_stocks":  "-5%",
		},
	},
	{
		Title: "10 Dicas para Economizar R$ 1000 por Mês",
		Kind:  "tips",
		Data: []map[string]string{
			{"tip": "Cancele assinaturas não utilizadas", "saving": "R$ 150"},
			{"tip": "Cozinhe mais em casa", "saving": "R$ 300"},
			{"tip": "Use transporte público", "saving": "R$ 200"},
			{"tip": "Renegocie planos de celular", "saving": "R$ 100"},
			{"tip": "Compre genéricos", "saving": "R$ 250"},
		},
	},
	{
		Title: "Evolução do Bitcoin vs Ibovespa em 2025",
		Kind:  "chart",
		Data: map[string]map[string]string{
			"bitcoin":  {"ytd": "+45%", "volatility": "Alta"},
			"ibovespa": {"ytd": "+12%", "volatility": "Média"},
			"cdi":      {"ytd": "+10.5%", "volatility": "Baixa"},
		},
	},
}

var videoTopics = []string{
	"Como calcular juros compostos em 30 segundos",
	"3 erros que te impedem de ficar rico",
	"Cartão de crédito: vilão ou herói?",
	"Bitcoin: vale a pena investir em 2025?",
	"Como sair do vermelho em 5 passos",
}

// videoScripts carries hand-written scripts for a subset of topics; the rest
// get a placeholder until someone writes them.
var videoScripts = map[string]string{
	"Como calcular juros compostos em 30 segundos": `HOOK (0-3s): "Quer saber quanto seus R$ 1000 vão virar em 10 anos?"

CONTEÚDO (3-27s):
- Fórmula: M = C × (1 + i)^t
- Exemplo prático: R$ 1000 a 10% ao ano
- Resultado: R$ 2.594 em 10 anos
- "É por isso que Einstein chamou de 8ª maravilha do mundo!"

CTA (27-30s): "Salva aí e compartilha! 💰"

ELEMENTOS VISUAIS:
- Calculadora na tela
- Números crescendo
- Gráfico exponencial
- Emoji de dinheiro
`,
	"3 erros que te impedem de ficar rico": `HOOK (0-3s): "Estes 3 erros estão te mantendo pobre!"

CONTEÚDO (3-27s):
1. Não ter reserva de emergência (6 meses de gastos)
2. Investir sem conhecimento (estudar antes!)
3. Gastar mais do que ganha (controle seus gastos)

SOLUÇÃO: "Comece hoje mesmo!"

CTA (27-30s): "Qual erro você comete? Comenta aí! 👇"

ELEMENTOS VISUAIS:
- X vermelho para cada erro
- ✓ verde para soluções
- Gráficos simples
- Transições rápidas
`,
}

type quizSpec struct {
	Title     string            `json:"title"`
	Questions []string          `json:"questions"`
	Results   map[string]string `json:"results"`
}

var quizzes = []quizSpec{
	{
		Title: "Qual seu perfil de investidor?",
		Questions: []string{
			"Você prefere: A) Segurança B) Rentabilidade C) Equilibrio",
			"Em uma crise, você: A) Vende tudo B) Compra mais C) Mantém posição",
			"Seu prazo de investimento: A) Curto B) Médio C) Longo",
		},
		Results: map[string]string{
			"AAA": "Conservador - Prefira renda fixa",
			"BBB": "Arrojado - Ações podem ser sua praia",
			"CCC": "Moderado - Diversifique seus investimentos",
		},
	},
	{
		Title: "Você sabe usar cartão de crédito?",
		Questions: []string{
			"Você paga: A) Mínimo B) Total C) Parcelado",
			"Limite ideal: A) Máximo B) 30% da renda C) Não sei",
			"Anuidade: A) Pago qualquer B) Só sem anuidade C) Depende dos benefícios",
		},
		Results: map[string]string{
			"BBB": "Expert! Você domina o cartão de crédito",
			"ABC": "Intermediário - Algumas melhorias necessárias",
			"AAA": "Iniciante - Cuidado com as armadilhas!",
		},
	},
}

type calculatorSpec struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Inputs      []string `json:"inputs"`
	Formula     string   `json:"formula"`
}

var calculators = []calculatorSpec{
	{
		Name:        "Calculadora de Aposentadoria",
		Description: "Descubra quanto precisa poupar para se aposentar",
		Inputs:      []string{"idade_atual", "idade_aposentadoria", "renda_desejada", "patrimonio_atual"},
		Formula:     "Juros compostos + inflação",
	},
	{
		Name:        "Calculadora de Juros do Cartão",
		Description: "Veja quanto você paga de juros no rotativo",
		Inputs:      []string{"valor_fatura", "percentual_pago", "taxa_juros"},
		Formula:     "Juros compostos mensais",
	},
	{
		Name:        "Simulador de Investimentos",
		Description: "Compare diferentes tipos de investimento",
		Inputs:      []string{"valor_inicial", "aporte_mensal", "prazo", "rentabilidade"},
		Formula:     "Valor futuro com aportes",
	},
}

var currentEvents = []domain.FinancialEvent{
	{Title: "Banco Central anuncia nova taxa Selic", Impact: "high", Category: "monetary_policy"},
	{Title: "Nova regulamentação para PIX", Impact: "medium", Category: "payments"},
	{Title: "Black Friday: dicas para não se endividar", Impact: "high", Category: "consumer"},
}

var eventContentShapes = []string{"explanation", "tips", "impact_analysis"}
