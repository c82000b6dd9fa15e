package gemini

import "fmt"

// Prompt builders. The wording is Brazilian Portuguese because the
// produced content (titles, script, SEO copy) targets a PT-BR audience.

func titlesPrompt(topic string) string {
	return fmt.Sprintf(`Gere 5 títulos VIRAIS de vídeo para o YouTube sobre o tema: "%s".

Requisitos:
- Máximo de 60 caracteres (títulos mais curtos têm melhor desempenho)
- Use gatilhos emocionais (chocante, inacreditável, comovente, etc.)
- Inclua palavras de poder que criem urgência
- Adicione elementos de mistério ou curiosidade
- Use números quando relevante (Top 5, 3 Segredos, etc.)
- Considere adicionar emojis se apropriado
- Torne impossível NÃO clicar

Exemplos de formatos virais:
- "Ela Era [X] Até Descobrir [Y]"
- "[Celebridade/Papel] Fez O QUÊ?! (CHOQUE)"
- "Riram Dele Quando [X], Mas Então [Y]..."
- "O Segredo [X] Que [Autoridade] Não Quer Que Você Saiba"`, topic)
}

func storyPrompt(title string) string {
	return fmt.Sprintf(`Crie um roteiro de história VIRAL em PORTUGUÊS para o YouTube com o título: "%s". Alvo: 8-10 minutos de tempo de leitura.

**REQUISITOS ABSOLUTOS:**

1. **REGRAS DE DIÁLOGO:**
   - Cada linha de diálogo deve soar como pessoas REAIS falando.
   - Máximo de 15 palavras por linha de diálogo.
   - Use contrações (tá, pra, etc.) e gírias apropriadas.
   - Inclua interrupções, hesitações, padrões de fala reais.

2. **FREQUÊNCIA DE GANCHOS (HOOKS):**
   - Insira um gancho/pergunta/cliffhanger a cada 3-4 frases, NO MÍNIMO.
   - Use padrões como: "Mas foi aí que tudo mudou...", "Ela não tinha
     ideia do que estava por vir.", "Você teria feito a mesma escolha?"

3. **MOMENTOS EMOCIONAIS (Inclua TODOS):**
   - Uma traição que faça os espectadores arfarem.
   - Um momento de "tudo está perdido" onde a esperança morre.
   - Um aliado inesperado aparecendo.
   - Uma revelação de segredo chocante.
   - Um momento de vingança/justiça satisfatório.
   - Uma recompensa emocional comovente.

4. **FÓRMULA DE RITMO:**
   - Comece no meio da ação (sem preparação).
   - Um ponto de virada importante a cada 200 palavras.
   - Nenhuma cena com mais de 150 palavras.
   - Corte TODAS as descrições, exceto detalhes visuais críticos.

**ESTRUTURA DA HISTÓRIA (4 partes de 700-800 palavras):**

**Parte 1: Gancho Inicial** - protagonista em perigo imediato, dilema
central no primeiro parágrafo, termine com gancho de flashback.
**Parte 2: A Armadilha se Fecha** - apresente o FALSO aliado, construa
falsa esperança, termine com a revelação da traição.
**Parte 3: Fundo do Poço e Ascensão** - o protagonista perde tudo,
descobre uma força oculta, aliança improvável, preparação para o
confronto.
**Parte 4: Confronto e Reviravolta** - confronto final, o jogo vira,
justiça satisfatória, epílogo emocional, gancho final para o espectador.

**EXPRESSÕES PROIBIDAS:** "Mal sabia ela", "O destino tinha outros
planos", "Foi um testemunho de", qualquer linguagem formal/literária.

**EXPRESSÕES OBRIGATÓRIAS (use variações):** "Você não vai acreditar no
que aconteceu a seguir", "É aqui que a coisa fica louca", "Lembre-se
deste detalhe, é importante", "O que você teria feito?"`, title)
}

func imageDescriptionsPrompt(storySummary string, count int) string {
	return fmt.Sprintf(`Crie %d descrições de imagem CINEMATOGRÁFICAS para esta história: "%s"

Requisitos para CADA imagem:
1. Foco em EXPRESSÕES FACIAIS mostrando emoção crua.
2. Inclua iluminação dramática (golden hour, neon, sombras, etc.).
3. Descreva a linguagem corporal que conta a história.
4. Adicione detalhes atmosféricos (chuva, neblina, vidro quebrado, etc.).
5. Mantenha a consistência dos personagens (cabelo, idade, estilo de roupa).
6. Use ângulos cinematográficos (close-up em lágrimas, plano aberto, sobre o ombro, etc.).

Formate cada uma para maximizar o impacto visual e a resposta emocional.`, count, storySummary)
}

func imagePrompt(scenePrompt string) string {
	return fmt.Sprintf(`Cena cinematográfica, narrativa emocional, frame de vídeo do YouTube.
%s
Estilo: Fotorrealista, iluminação dramática, alto contraste, foco nítido em rostos mostrando emoção intensa,
profundidade de campo, color grading como um drama da Netflix, proporção 16:9, qualidade 4K.
Ênfase em: expressões faciais, linguagem corporal, narrativa ambiental.`, scenePrompt)
}

func thumbnailPrompt(title, storySummary string) string {
	return fmt.Sprintf(`Crie um prompt para uma miniatura (thumbnail) VIRAL de YouTube para: "%s"
História: "%s"

A miniatura deve ter:
1. Tela dividida ou composição dramática.
2. Expressão facial chocada/emocional em primeiro plano.
3. Setas ou círculos vermelhos destacando um elemento chave.
4. Alto contraste, cores saturadas.
5. Um ponto focal claro que conta a história.
6. Áreas para sobreposição de texto (deixe espaço para o título).

Faça ser impossível rolar a página sem clicar.`, title, storySummary)
}

func youtubeDescriptionPrompt(title, storySummary string) string {
	return fmt.Sprintf(`Crie uma descrição de vídeo do YouTube atraente e otimizada para SEO, com base no título "%s" e neste resumo: "%s".

**Requisitos de Estrutura:**
1. **Gancho Envolvente (1-2 frases):** comece com uma frase que prenda a atenção e inclua as principais palavras-chave do título.
2. **Resumo Detalhado (3-4 frases):** expanda a premissa, o conflito e o que esperar, sem revelar o final.
3. **Seção de Palavras-chave:** liste de 5 a 7 palavras-chave relevantes.
4. **Seção de Hashtags:** forneça de 3 a 5 hashtags relevantes (ex: #HistoriaAnimada, #Drama, #HistoriaViral).
5. **Chamada para Ação:** termine com uma chamada para ação.

Toda a descrição deve ser bem formatada e fácil de ler.`, title, storySummary)
}
