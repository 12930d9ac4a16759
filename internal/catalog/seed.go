package catalog

import "fmt"

// Seed returns the built-in catalog shipped with the binary.
// External content loaded via LoadDir is merged on top of it.
func Seed() *Catalog {
	c, err := New(seedItems)
	if err != nil {
		// Seed data is compiled in; a bad seed is a programming error.
		panic(fmt.Sprintf("invalid seed catalog: %v", err))
	}
	return c
}

var seedItems = []ContentItem{
	{
		ID:               "mat-funcoes-1grau",
		Subject:          SubjectMath,
		Theme:            "Álgebra",
		Title:            "Funções do 1º grau",
		Description:      "Conceito, gráfico e aplicações de funções afins.",
		Difficulty:       DifficultyMedium,
		EstimatedMinutes: 12,
		MentorID:         "prof-helena",
		Text: "Uma função do 1º grau, também chamada de função afim, é toda função da forma f(x) = ax + b, com a diferente de zero. O coeficiente a é chamado de coeficiente angular e determina a inclinação da reta; o coeficiente b é o coeficiente linear e indica o ponto em que a reta corta o eixo y.\n\n" +
			"Quando a é positivo, a função é crescente: aumentar x aumenta f(x). Quando a é negativo, a função é decrescente. Esse comportamento aparece com frequência no ENEM em questões de proporção, como tarifas de táxi, planos de telefonia e consumo de combustível.\n\n" +
			"A raiz da função é o valor de x que torna f(x) = 0, obtido por x = -b/a. Graficamente, é o ponto onde a reta cruza o eixo x. Identificar a raiz é essencial em problemas de ponto de equilíbrio, como descobrir quando um custo iguala uma receita.\n\n" +
			"Para montar a lei da função a partir de um enunciado, identifique o valor fixo (coeficiente linear) e o valor que varia por unidade (coeficiente angular). Por exemplo, uma corrida de táxi com bandeirada de R$ 5,00 e R$ 2,50 por quilômetro é modelada por f(x) = 2,5x + 5.\n\n" +
			"No gráfico, dois pontos bastam para traçar a reta. Escolha valores convenientes de x, calcule f(x) e marque os pares ordenados. A leitura inversa também cai na prova: dado o gráfico, extrair os coeficientes comparando intersecções e inclinação.",
		Activities: []ActivityDef{
			{
				Kind:  ActivityFlashcards,
				Title: "Conceitos de função afim",
				Flashcards: []Flashcard{
					{Front: "O que representa o coeficiente angular?", Back: "A inclinação da reta: a variação de f(x) por unidade de x."},
					{Front: "O que representa o coeficiente linear?", Back: "O ponto onde a reta corta o eixo y (valor de f(0))."},
					{Front: "Como se calcula a raiz de f(x) = ax + b?", Back: "x = -b/a, o ponto onde a reta cruza o eixo x."},
					{Front: "Quando uma função afim é decrescente?", Back: "Quando o coeficiente angular a é negativo."},
				},
			},
			{
				Kind:       ActivityDragDrop,
				Title:      "Classifique as funções",
				Categories: []string{"Crescente", "Decrescente"},
				DragItems: []DragItem{
					{Label: "f(x) = 3x - 7", Category: "Crescente"},
					{Label: "f(x) = -2x + 1", Category: "Decrescente"},
					{Label: "f(x) = x/2 + 4", Category: "Crescente"},
					{Label: "f(x) = 5 - x", Category: "Decrescente"},
				},
			},
			{
				Kind:  ActivityFillBlank,
				Title: "Complete as definições",
				BlankQuestions: []BlankQuestion{
					{
						Prompt: "Na função f(x) = 2,5x + 5, o coeficiente linear vale ___.",
						Blanks: []Blank{{Answer: "5", Alternatives: []string{"5,00", "5.00", "cinco"}}},
					},
					{
						Prompt: "A raiz de f(x) = 4x - 8 é x = ___.",
						Blanks: []Blank{{Answer: "2", Alternatives: []string{"dois"}}},
					},
				},
			},
		},
		Quiz: []QuizQuestion{
			{
				Prompt:       "Uma corrida de táxi custa R$ 4,00 de bandeirada mais R$ 2,00 por km. Qual função modela o preço?",
				Options:      []string{"f(x) = 4x + 2", "f(x) = 2x + 4", "f(x) = 6x", "f(x) = 2x - 4"},
				CorrectIndex: 1,
				Explanation:  "O valor fixo (R$ 4,00) é o coeficiente linear; o valor por km (R$ 2,00) é o angular.",
			},
			{
				Prompt:       "A raiz da função f(x) = -3x + 9 é:",
				Options:      []string{"x = -3", "x = 9", "x = 3", "x = 1/3"},
				CorrectIndex: 2,
				Explanation:  "x = -b/a = -9/(-3) = 3.",
			},
			{
				Prompt:       "Se f(x) = ax + b é decrescente, então:",
				Options:      []string{"a > 0", "a < 0", "b > 0", "b < 0"},
				CorrectIndex: 1,
			},
			{
				Prompt:       "O gráfico de f(x) = x + 2 corta o eixo y em:",
				Options:      []string{"(0, 2)", "(2, 0)", "(0, -2)", "(-2, 0)"},
				CorrectIndex: 0,
				Explanation:  "f(0) = 2, logo a reta corta o eixo y no ponto (0, 2).",
			},
			{
				Prompt:       "Um plano de celular cobra R$ 30,00 fixos mais R$ 0,50 por minuto. O custo de 40 minutos é:",
				Options:      []string{"R$ 45,00", "R$ 50,00", "R$ 55,00", "R$ 70,00"},
				CorrectIndex: 1,
				Explanation:  "f(40) = 0,5 × 40 + 30 = 50.",
			},
		},
		Challenge: &Challenge{
			Prompt:           "Explique com suas palavras como identificar, no enunciado de um problema, o coeficiente angular e o coeficiente linear de uma função afim. Dê um exemplo do cotidiano.",
			Points:           50,
			BadgeID:          "badge-funcoes-1grau",
			BadgeName:        "Mestre das Funções",
			BadgeDescription: "Completou o desafio de funções do 1º grau.",
			BadgeIcon:        "📈",
		},
	},
	{
		ID:               "lin-figuras-linguagem",
		Subject:          SubjectLanguages,
		Theme:            "Interpretação de texto",
		Title:            "Figuras de linguagem",
		Description:      "Metáfora, metonímia, hipérbole e outras figuras cobradas no ENEM.",
		Difficulty:       DifficultyEasy,
		EstimatedMinutes: 8,
		MentorID:         "prof-carlos",
		Text: "Figuras de linguagem são recursos expressivos que deslocam o sentido literal das palavras para produzir efeitos de sentido. O ENEM cobra, sobretudo, a identificação do efeito que a figura produz no texto, e não apenas o seu nome.\n\n" +
			"A metáfora aproxima dois campos de sentido sem conectivo comparativo: \"aquele atleta é uma máquina\". A comparação, por sua vez, explicita o conectivo: \"corre como uma máquina\". A metonímia troca um termo por outro de relação próxima, como a parte pelo todo: \"leu Machado de Assis\" (a obra pelo autor).\n\n" +
			"A hipérbole exagera intencionalmente (\"já falei um milhão de vezes\"), enquanto o eufemismo suaviza (\"ele nos deixou\" por \"ele morreu\"). A ironia afirma o contrário do que se quer dizer, dependendo fortemente do contexto para ser percebida.\n\n" +
			"Em charges e anúncios publicitários, as figuras costumam se combinar com a linguagem visual. Atente para o diálogo entre texto verbal e imagem: é aí que as provas recentes concentram suas questões.",
		Activities: []ActivityDef{
			{
				Kind:       ActivityDragDrop,
				Title:      "Identifique a figura",
				Categories: []string{"Metáfora", "Metonímia", "Hipérbole"},
				DragItems: []DragItem{
					{Label: "\"Aquela menina é uma flor\"", Category: "Metáfora"},
					{Label: "\"Bebi um copo d'água\"", Category: "Metonímia"},
					{Label: "\"Chorei rios de lágrimas\"", Category: "Hipérbole"},
					{Label: "\"O Planalto anunciou a medida\"", Category: "Metonímia"},
					{Label: "\"Seu olhar é um abismo\"", Category: "Metáfora"},
				},
			},
		},
		Quiz: []QuizQuestion{
			{
				Prompt:       "\"Já esperei uma eternidade por você.\" A figura presente é:",
				Options:      []string{"Metáfora", "Hipérbole", "Eufemismo", "Metonímia"},
				CorrectIndex: 1,
				Explanation:  "Há exagero intencional na duração da espera.",
			},
			{
				Prompt:       "Em \"a cidade inteira parou para ver o desfile\", ocorre:",
				Options:      []string{"Ironia", "Comparação", "Metonímia", "Eufemismo"},
				CorrectIndex: 2,
				Explanation:  "\"Cidade\" substitui \"os habitantes da cidade\": o continente pelo conteúdo.",
			},
			{
				Prompt:       "A diferença entre metáfora e comparação é:",
				Options:      []string{"A metáfora usa conectivo comparativo", "A comparação usa conectivo comparativo", "São sinônimos", "A comparação só ocorre em poesia"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:               "nat-ciclo-agua",
		Subject:          SubjectNature,
		Theme:            "Ecologia",
		Title:            "Ciclo da água",
		Description:      "Evaporação, condensação, precipitação e a interferência humana no ciclo hidrológico.",
		Difficulty:       DifficultyEasy,
		EstimatedMinutes: 6,
		MentorID:         "prof-helena",
		Text: "O ciclo hidrológico descreve o movimento contínuo da água entre oceanos, atmosfera e continentes. A energia solar evapora a água de superfícies líquidas; a transpiração dos vegetais soma-se a esse fluxo, no processo conjunto chamado evapotranspiração.\n\n" +
			"Na atmosfera, o vapor se resfria e condensa em microgotículas, formando nuvens. Quando as gotas se agregam e atingem massa suficiente, ocorre a precipitação, na forma de chuva, neve ou granizo, devolvendo água aos continentes e oceanos.\n\n" +
			"Parte da água precipitada infiltra no solo e recarrega aquíferos; outra parte escoa superficialmente até rios e lagos. A impermeabilização urbana reduz a infiltração e intensifica enchentes, tema recorrente nas questões ambientais do ENEM.\n\n" +
			"O desmatamento também altera o ciclo: sem cobertura vegetal, cai a evapotranspiração e, com ela, a formação de chuvas regionais — caso dos \"rios voadores\" da Amazônia, que abastecem de umidade o Centro-Sul do país.",
		Activities: []ActivityDef{
			{
				Kind:  ActivityFlashcards,
				Title: "Etapas do ciclo",
				Flashcards: []Flashcard{
					{Front: "O que é evapotranspiração?", Back: "A soma da evaporação das superfícies com a transpiração dos vegetais."},
					{Front: "O que provoca a condensação do vapor?", Back: "O resfriamento do ar em altitude, formando microgotículas."},
					{Front: "Por que a impermeabilização urbana agrava enchentes?", Back: "Reduz a infiltração no solo e aumenta o escoamento superficial."},
				},
			},
			{
				Kind:  ActivityFillBlank,
				Title: "Complete o ciclo",
				BlankQuestions: []BlankQuestion{
					{
						Prompt: "A água que infiltra no solo recarrega os ___.",
						Blanks: []Blank{{Answer: "aquíferos", Alternatives: []string{"aquiferos", "lençóis freáticos"}}},
					},
					{
						Prompt: "A umidade exportada pela Amazônia forma os chamados rios ___.",
						Blanks: []Blank{{Answer: "voadores", Alternatives: []string{"voadores."}}},
					},
				},
			},
		},
		Quiz: []QuizQuestion{
			{
				Prompt:       "A formação de nuvens corresponde a qual mudança de estado físico?",
				Options:      []string{"Evaporação", "Condensação", "Fusão", "Sublimação"},
				CorrectIndex: 1,
			},
			{
				Prompt:       "O desmatamento reduz as chuvas regionais principalmente porque:",
				Options:      []string{"Aumenta a infiltração", "Diminui a evapotranspiração", "Aquece os aquíferos", "Acelera o escoamento dos rios"},
				CorrectIndex: 1,
				Explanation:  "Menos vegetação significa menos vapor d'água lançado na atmosfera.",
			},
			{
				Prompt:       "A impermeabilização do solo urbano tem como consequência direta:",
				Options:      []string{"Recarga de aquíferos", "Redução do escoamento", "Intensificação de enchentes", "Aumento da transpiração"},
				CorrectIndex: 2,
			},
		},
		Challenge: &Challenge{
			Prompt:           "Relacione o conceito de rios voadores com a segurança hídrica do Centro-Sul do Brasil.",
			Points:           40,
			BadgeID:          "badge-ciclo-agua",
			BadgeName:        "Guardião das Águas",
			BadgeDescription: "Completou o desafio do ciclo hidrológico.",
			BadgeIcon:        "💧",
		},
	},
	{
		ID:               "hum-era-vargas",
		Subject:          SubjectHumanities,
		Theme:            "História do Brasil",
		Title:            "Era Vargas",
		Description:      "Do governo provisório ao Estado Novo: política, trabalho e propaganda.",
		Difficulty:       DifficultyHard,
		EstimatedMinutes: 15,
		MentorID:         "prof-carlos",
		Text: "A Era Vargas (1930-1945) começa com a Revolução de 1930, que depôs a República Oligárquica e levou Getúlio Vargas ao poder. O período divide-se em três fases: Governo Provisório (1930-1934), Governo Constitucional (1934-1937) e Estado Novo (1937-1945).\n\n" +
			"No Governo Provisório, Vargas centralizou o poder nomeando interventores para os estados, o que provocou a reação paulista na Revolução Constitucionalista de 1932. A Constituição de 1934 incorporou o voto secreto, o voto feminino e a justiça do trabalho.\n\n" +
			"O Estado Novo, instaurado com o pretexto do Plano Cohen, fechou o Congresso, censurou a imprensa pelo DIP e reprimiu opositores. Ao mesmo tempo, consolidou a legislação trabalhista na CLT (1943), base da imagem de Vargas como \"pai dos pobres\".\n\n" +
			"O ENEM costuma explorar a ambiguidade do período: modernização econômica e direitos sociais convivendo com autoritarismo e propaganda. Questões frequentemente apresentam cartazes do DIP ou trechos da CLT para análise crítica.\n\n" +
			"A entrada do Brasil na Segunda Guerra Mundial ao lado dos Aliados tornou insustentável a ditadura interna, e Vargas foi deposto em 1945 — voltando à presidência pelo voto em 1951.",
		Quiz: []QuizQuestion{
			{
				Prompt:       "O pretexto para a instauração do Estado Novo em 1937 foi:",
				Options:      []string{"A Intentona Comunista", "O Plano Cohen", "A Revolução de 1932", "A Queima das bandeiras"},
				CorrectIndex: 1,
				Explanation:  "O Plano Cohen era um suposto plano comunista, forjado, usado para justificar o golpe.",
			},
			{
				Prompt:       "A Consolidação das Leis do Trabalho (CLT) data de:",
				Options:      []string{"1934", "1937", "1943", "1945"},
				CorrectIndex: 2,
			},
			{
				Prompt:       "O DIP, no Estado Novo, era responsável por:",
				Options:      []string{"Planejamento econômico", "Censura e propaganda", "Justiça eleitoral", "Reforma agrária"},
				CorrectIndex: 1,
			},
			{
				Prompt:       "A Constituição de 1934 NÃO incluiu:",
				Options:      []string{"Voto feminino", "Voto secreto", "Justiça do trabalho", "Eleição direta para 1938"},
				CorrectIndex: 3,
				Explanation:  "O golpe de 1937 cancelou as eleições previstas para 1938.",
			},
			{
				Prompt:       "A deposição de Vargas em 1945 relaciona-se com:",
				Options:      []string{"A crise de 1929", "A contradição entre lutar contra o nazifascismo e manter uma ditadura", "A Revolução Constitucionalista", "O suicídio de Vargas"},
				CorrectIndex: 1,
			},
		},
		Challenge: &Challenge{
			Prompt:           "Por que a historiografia descreve a Era Vargas como um período ambíguo? Cite um avanço social e uma prática autoritária.",
			Points:           60,
			BadgeID:          "badge-era-vargas",
			BadgeName:        "Historiador do Brasil",
			BadgeDescription: "Completou o desafio da Era Vargas.",
			BadgeIcon:        "🏛️",
		},
	},
}
