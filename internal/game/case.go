package game

// Scenario and difficulty values understood by the game master prompts. The
// wire keys stay in Portuguese: the frontend and the generator templates both
// speak them.
var Scenarios = []string{"Mansão", "Praia", "Parque", "Teatro", "Hotel-Cassino"}

const (
	DefaultScenario   = "Mansão"
	DefaultDifficulty = "Iniciante"
)

// Suspect is one of the generated character profiles in a case.
type Suspect struct {
	ID         int    `json:"id"`
	Name       string `json:"nome" validate:"required"`
	Occupation string `json:"ocupacao"`
	Secret     string `json:"segredo"`
}

// Case is the structured payload produced by the content generator. It is
// replaced wholesale on (re)generation and treated as opaque by the turn
// loop; only the extraction layer looks inside.
type Case struct {
	CaseID          string    `json:"case_id"`
	Difficulty      string    `json:"nivel"`
	Scenario        string    `json:"cenario"`
	CulpritID       int       `json:"culpado_id" validate:"min=0"`
	Players         []Suspect `json:"jogadores" validate:"dive"`
	InitialClues    []string  `json:"pistas_iniciais"`
	BodyLocation    string    `json:"local_corpo"`
	MurderWeapon    string    `json:"arma_crime"`
	Description     string    `json:"descricao,omitempty"`
	Suspects        []any     `json:"suspeitos"`
	Evidence        []any     `json:"evidencias"`
	Timeline        []any     `json:"timeline"`
	InitialTheories []any     `json:"hipoteses_iniciais"`
}

// Empty reports whether the case is still in its pre-generation shape.
func (c Case) Empty() bool {
	return c.CaseID == "" && c.Description == "" && len(c.Players) == 0
}

// ChatEntry is an immutable interrogation record appended to a room's log.
type ChatEntry struct {
	Suspect         string   `json:"suspeito" validate:"required"`
	Question        string   `json:"pergunta"`
	Answer          string   `json:"resposta"`
	NonVerbalCues   string   `json:"sinais_nao_verbais"`
	Inconsistencies []string `json:"inconsistencias"`
	SuggestedClues  []string `json:"pistas_sugeridas"`
}
