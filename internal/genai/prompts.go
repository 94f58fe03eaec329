package genai

import "fmt"

// Prompt templates are game data and stay in Portuguese: the generator is
// instructed in the language the frontend presents to players.

const systemGameMaster = `Você é o Mestre do Jogo 'Deadly Truth'. Seu tom é misterioso, imersivo e de suspense noir.
REGRAS:
1. Você gerencia 12 jogadores em um dos 5 cenários: Mansão, Praia, Parque, Teatro ou Hotel-Cassino.
2. Apenas UM jogador é o assassino (identificado por ID).
3. Você deve gerar pistas fragmentadas. Algumas pistas incriminam, outras inocentam.
4. Em interrogatórios, o assassino pode mentir, mas você deve dar sinais sutis de nervosismo (sinais_nao_verbais).
5. O tempo é crucial. Cada resposta deve ser rápida e instigar o próximo jogador.`

// CasePrompt asks the game master for a full murder case.
func CasePrompt(numPlayers int, scenario, difficulty string) string {
	return fmt.Sprintf(`[TAREFA] Criar um cenário de assassinato para %[1]d jogadores.
[CENÁRIO] %[2]s
[DIFICULDADE] %[3]s
[REQUERIMENTOS]
- Identifique o culpado entre os IDs de 1 a %[1]d.
- Crie %[1]d perfis curtos (nome, ocupação, segredo).
- Gere %[1]d "Pistas Iniciais", uma para cada jogador (o jogador X recebe a pista X).
- Defina o local exato do corpo e a arma do crime.
[SAÍDA] Responda estritamente em JSON.`, numPlayers, scenario, difficulty)
}

// InterrogationPrompt asks the game master to answer as a suspect.
func InterrogationPrompt(caseSummary, suspect, question, difficulty string) string {
	return fmt.Sprintf(`[TAREFA] Interrogatório direcionado.
[CASO] %s
[SUSPEITO] %s
[PERGUNTA] %s
[NÍVEL] %s
[SAÍDA] Responda como o SUSPEITO (voz e conhecimento dele), mantendo coerência com o caso. Em seguida, anexe campos auxiliares (sinais não verbais, inconsistências e pistas sugeridas) no formato JSON padrão de interrogatório.`,
		caseSummary, suspect, question, difficulty)
}
