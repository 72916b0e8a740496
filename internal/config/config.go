// Package config provides YAML-based game configuration loading and the
// difficulty presets for the arcade.
//
// Durations and intervals are expressed in simulation ticks (60 per second).
package config

// RampConfig defines how a game speeds up within a run.
type RampConfig struct {
	Type       string  `yaml:"type"`        // "score", "time", or "none"
	MaxAt      int     `yaml:"max_at"`      // Score/ticks at which the full bonus applies
	SpeedBonus float64 `yaml:"speed_bonus"` // Added to the speed factor at MaxAt
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Arena   SnakeArena   `yaml:"arena"`
	Move    SnakeMove    `yaml:"move"`
	Scoring SnakeScoring `yaml:"scoring"`
	Ramp    RampConfig   `yaml:"ramp"`
}

// SnakeArena defines the playfield, border included.
type SnakeArena struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	InitialLength int `yaml:"initial_length"`
}

// SnakeMove defines movement timing.
type SnakeMove struct {
	EveryTicks int `yaml:"every_ticks"`
	MinTicks   int `yaml:"min_ticks"`
}

// SnakeScoring defines points.
type SnakeScoring struct {
	Food int `yaml:"food"`
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Well    TetrisWell    `yaml:"well"`
	Gravity TetrisGravity `yaml:"gravity"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisWell defines the well size in cells.
type TetrisWell struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisGravity defines the fall interval and its progression.
type TetrisGravity struct {
	BaseTicks     int `yaml:"base_ticks"`
	StepPerLevel  int `yaml:"step_per_level"`
	MinTicks      int `yaml:"min_ticks"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// TetrisScoring defines points. Lines holds the base points for clearing
// one to four lines at once, multiplied by the level.
type TetrisScoring struct {
	Lines    []int `yaml:"lines"`
	SoftDrop int   `yaml:"soft_drop"`
	HardDrop int   `yaml:"hard_drop"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Physics  PongPhysics  `yaml:"physics"`
	Paddles  PongPaddles  `yaml:"paddles"`
	Gameplay PongGameplay `yaml:"gameplay"`
	CPU      PongCPU      `yaml:"cpu"`
	Ramp     RampConfig   `yaml:"ramp"`
}

// PongPhysics defines physics parameters in cells per tick.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	SpinFactor   float64 `yaml:"spin_factor"`
	SpeedUp      float64 `yaml:"speed_up"` // Horizontal speed factor per paddle hit
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Offset int `yaml:"offset"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"`
}

// PongCPU defines the opponent.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Physics  BreakoutPhysics  `yaml:"physics"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutPhysics uses fixed-point values (1000 = 1 cell per tick).
type BreakoutPhysics struct {
	BallSpeed    int `yaml:"ball_speed"`
	PaddleSpeed  int `yaml:"paddle_speed"`
	MaxBallSpeed int `yaml:"max_ball_speed"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width int `yaml:"width"`
}

// BreakoutBricks defines the brick wall. Points are per row, top first.
type BreakoutBricks struct {
	Rows   int   `yaml:"rows"`
	Cols   int   `yaml:"cols"`
	Width  int   `yaml:"width"`
	Top    int   `yaml:"top"`
	Points []int `yaml:"points"`
}

// BreakoutGameplay defines lives and progression.
type BreakoutGameplay struct {
	Lives         int `yaml:"lives"`
	ServeDelay    int `yaml:"serve_delay"`
	SpeedUpEveryN int `yaml:"speed_up_every_n"` // Bricks between speed-ups
	SpeedUpAmount int `yaml:"speed_up_amount"`  // Fixed-point speed added
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	Formation InvadersFormation `yaml:"formation"`
	Player    InvadersPlayer    `yaml:"player"`
	Enemy     InvadersEnemy     `yaml:"enemy"`
	Scoring   InvadersScoring   `yaml:"scoring"`
}

// InvadersFormation defines the marching formation.
type InvadersFormation struct {
	Rows          int `yaml:"rows"`
	Cols          int `yaml:"cols"`
	SpacingX      int `yaml:"spacing_x"`
	SpacingY      int `yaml:"spacing_y"`
	MarchTicks    int `yaml:"march_ticks"`
	MinMarchTicks int `yaml:"min_march_ticks"`
	WaveSpeedUp   int `yaml:"wave_speed_up"` // Ticks removed from MarchTicks per wave
}

// InvadersPlayer defines the cannon.
type InvadersPlayer struct {
	Lives        int `yaml:"lives"`
	MoveTicks    int `yaml:"move_ticks"`
	ShotCooldown int `yaml:"shot_cooldown"`
	ShotTicks    int `yaml:"shot_ticks"` // Ticks per cell of shot travel
	Invulnerable int `yaml:"invulnerable"`
}

// InvadersEnemy defines enemy fire.
type InvadersEnemy struct {
	ShotTicks    int `yaml:"shot_ticks"`
	FireInterval int `yaml:"fire_interval"`
	MaxShots     int `yaml:"max_shots"`
}

// InvadersScoring defines points. Rows holds the value per formation row,
// top first; the last entry repeats for deeper formations.
type InvadersScoring struct {
	Rows      []int `yaml:"rows"`
	WaveBonus int   `yaml:"wave_bonus"`
}

// MemoryConfig contains all configuration for Memory Match.
type MemoryConfig struct {
	Board   MemoryBoard   `yaml:"board"`
	Timing  MemoryTiming  `yaml:"timing"`
	Scoring MemoryScoring `yaml:"scoring"`
}

// MemoryBoard defines the card grid. Cols*Rows must be even.
type MemoryBoard struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// MemoryTiming defines the time limit and the mismatch reveal.
type MemoryTiming struct {
	TimeLimit     int `yaml:"time_limit"`
	MismatchTicks int `yaml:"mismatch_ticks"`
}

// MemoryScoring defines points.
type MemoryScoring struct {
	Match           int `yaml:"match"`
	MismatchPenalty int `yaml:"mismatch_penalty"`
	SecondBonus     int `yaml:"second_bonus"` // Per second left when the board is cleared
}

// BalloonConfig contains all configuration for Balloon Pop.
type BalloonConfig struct {
	Field    BalloonField    `yaml:"field"`
	Spawn    BalloonSpawn    `yaml:"spawn"`
	Gameplay BalloonGameplay `yaml:"gameplay"`
	Scoring  BalloonScoring  `yaml:"scoring"`
}

// BalloonField defines the sky size in cells.
type BalloonField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BalloonSpawn defines balloon generation and movement.
type BalloonSpawn struct {
	IntervalTicks int     `yaml:"interval_ticks"`
	RiseTicks     int     `yaml:"rise_ticks"` // Ticks per cell climbed
	GoldenChance  float64 `yaml:"golden_chance"`
	BombChance    float64 `yaml:"bomb_chance"`
}

// BalloonGameplay defines lives and round length.
type BalloonGameplay struct {
	Lives      int `yaml:"lives"`
	RoundTicks int `yaml:"round_ticks"`
	CursorStep int `yaml:"cursor_step"`
}

// BalloonScoring defines points.
type BalloonScoring struct {
	Pop    int `yaml:"pop"`
	Golden int `yaml:"golden"`
}

// PuzzleConfig contains all configuration for the drag-drop puzzle.
type PuzzleConfig struct {
	Board    PuzzleBoard    `yaml:"board"`
	Gameplay PuzzleGameplay `yaml:"gameplay"`
}

// PuzzleBoard defines the grid of pieces.
type PuzzleBoard struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// PuzzleGameplay defines the time limit and shuffle depth.
type PuzzleGameplay struct {
	TimeLimit    int `yaml:"time_limit"`
	ShuffleSwaps int `yaml:"shuffle_swaps"`
}

// SimonConfig contains all configuration for Simon Says.
type SimonConfig struct {
	Timing  SimonTiming  `yaml:"timing"`
	Scoring SimonScoring `yaml:"scoring"`
}

// SimonTiming defines playback and input windows.
type SimonTiming struct {
	FlashTicks   int `yaml:"flash_ticks"`
	GapTicks     int `yaml:"gap_ticks"`
	InputTimeout int `yaml:"input_timeout"`
	RoundDelay   int `yaml:"round_delay"`
}

// SimonScoring defines points and the winning length.
type SimonScoring struct {
	Round     int `yaml:"round"`
	MaxRounds int `yaml:"max_rounds"`
}

// WhackConfig contains all configuration for Whack-a-Mole.
type WhackConfig struct {
	Board   WhackBoard   `yaml:"board"`
	Timing  WhackTiming  `yaml:"timing"`
	Scoring WhackScoring `yaml:"scoring"`
	Ramp    RampConfig   `yaml:"ramp"`
}

// WhackBoard defines the hole grid.
type WhackBoard struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	MaxMoles int `yaml:"max_moles"`
}

// WhackTiming defines round length and mole timing.
type WhackTiming struct {
	RoundTicks   int `yaml:"round_ticks"`
	SpawnTicks   int `yaml:"spawn_ticks"`
	VisibleTicks int `yaml:"visible_ticks"`
}

// WhackScoring defines points.
type WhackScoring struct {
	Hit  int `yaml:"hit"`
	Miss int `yaml:"miss"` // Subtracted for striking an empty hole
}
