package social

import (
	"fmt"
	"strings"

	"financehub/internal/domain"
)

// Platforms every article gets content for, in generation order.
var platforms = []string{"twitter", "linkedin", "instagram", "tiktok"}

var hashtagsByPlatform = map[string][]string{
	"twitter": {
		"#FinançasPessoais", "#Investimentos", "#DicasFinanceiras",
		"#EducaçãoFinanceira", "#Poupança", "#RendaPassiva",
		"#CartãoDeCredito", "#Empréstimos", "#CriptoMoedas",
	},
	"linkedin": {
		"#FinançasPessoais", "#Investimentos", "#PlanejamentoFinanceiro",
		"#EducaçãoFinanceira", "#Carreira", "#Empreendedorismo",
		"#MercadoFinanceiro", "#Economia",
	},
	"instagram": {
		"#financaspessoais", "#investimentos", "#dicasfinanceiras",
		"#educacaofinanceira", "#poupanca", "#rendapassiva",
		"#dinheiro", "#economia", "#planejamentofinanceiro",
	},
	"tiktok": {
		"#financaspessoais", "#investimentos", "#dicasfinanceiras",
		"#dinheiro", "#poupanca", "#rendapassiva", "#economia",
		"#educacaofinanceira", "#viral", "#fyp",
	},
}

// optimalHours are the posting slots that historically perform best per
// platform; one is picked at random per post.
var optimalHours = map[string][]int{
	"twitter":   {8, 12, 17, 20},
	"linkedin":  {8, 12, 17},
	"instagram": {11, 14, 17, 20},
	"tiktok":    {18, 19, 20, 21},
}

func twitterThread(article domain.Article, url string) string {
	return fmt.Sprintf(`🧵 THREAD: %s

1/ %s

2/ Principais pontos abordados:
• Estratégias práticas
• Dicas de especialistas
• Exemplos reais
• Análise detalhada

3/ Quer saber mais? Leia o artigo completo: %s

#FinançasPessoais #Investimentos #DicasFinanceiras`, article.Title, article.Excerpt, url)
}

func linkedInPost(article domain.Article, url string) string {
	return fmt.Sprintf(`💰 %s

%s

Este artigo oferece insights valiosos para profissionais que buscam:
✅ Otimizar suas finanças pessoais
✅ Tomar decisões de investimento mais inteligentes
✅ Construir riqueza de forma sustentável

Compartilhe suas experiências nos comentários!

Leia mais: %s`, article.Title, article.Excerpt, url)
}

func instagramStory(article domain.Article) string {
	return fmt.Sprintf(`💡 DICA FINANCEIRA DO DIA

%s

🎯 Dica principal:
%s

👆 Deslize para mais dicas
📖 Link na bio para artigo completo`, article.Title, mainTip(article.Content))
}

func tikTokScript(article domain.Article) string {
	tips := extractTips(article.Content, 3)
	lines := make([]string, 0, len(tips))
	for i, tip := range tips {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, tip))
	}

	return fmt.Sprintf(`🎬 SCRIPT TIKTOK: %s

HOOK (0-3s): "Você sabia que 90%% das pessoas cometem ESTE erro financeiro?"

CONTEÚDO (3-25s):
%s

CTA (25-30s): "Quer mais dicas? Segue aqui e comenta 💰"

TEXTO NA TELA: "%s"
MÚSICA: Trending finance sound`, article.Title, strings.Join(lines, "\n"), article.Title)
}

// mainTip grabs the first substantial sentence of the article body. Crude,
// but good enough until real summarization lands.
func mainTip(content string) string {
	for _, sentence := range strings.Split(content, ".") {
		if len(sentence) > 50 {
			return truncate(strings.TrimSpace(sentence), 100) + "..."
		}
	}
	return "Confira o artigo completo!"
}

// extractTips picks up to count medium-length sentences as quick tips.
func extractTips(content string, count int) []string {
	var tips []string
	for _, sentence := range strings.Split(content, ".") {
		if len(sentence) > 30 && len(sentence) < 100 {
			tips = append(tips, strings.TrimSpace(sentence))
			if len(tips) == count {
				break
			}
		}
	}
	return tips
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
