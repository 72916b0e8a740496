package config

import "embed"

//go:embed defaults/*.yaml
var defaultFS embed.FS

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	data, err := defaultFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena:   SnakeArena{Width: 40, Height: 20, InitialLength: 3},
		Move:    SnakeMove{EveryTicks: 8, MinTicks: 2},
		Scoring: SnakeScoring{Food: 10},
		Ramp:    RampConfig{Type: "score", MaxAt: 300, SpeedBonus: 1.0},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Well: TetrisWell{Width: 10, Height: 20},
		Gravity: TetrisGravity{
			BaseTicks:     48,
			StepPerLevel:  5,
			MinTicks:      3,
			LinesPerLevel: 10,
		},
		Scoring: TetrisScoring{
			Lines:    []int{100, 300, 500, 800},
			SoftDrop: 1,
			HardDrop: 2,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    0.5,
			PaddleSpeed:  1.0,
			MaxBallSpeed: 1.5,
			SpinFactor:   0.3,
			SpeedUp:      1.02,
		},
		Paddles:  PongPaddles{Height: 5, Width: 1, Offset: 2},
		Gameplay: PongGameplay{WinScore: 5, ServeDelay: 60},
		CPU:      PongCPU{MinSkill: 0.6, MaxSkill: 0.85},
		Ramp:     RampConfig{Type: "time", MaxAt: 36000, SpeedBonus: 0.5}, // 10 minutes at 60fps
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:    300,  // 0.3 cells per tick
			PaddleSpeed:  800,  // 0.8 cells per tick
			MaxBallSpeed: 1000, // 1.0 cells per tick max
		},
		Paddle: BreakoutPaddle{Width: 8},
		Bricks: BreakoutBricks{
			Rows:   5,
			Cols:   10,
			Width:  6,
			Top:    3,
			Points: []int{50, 40, 30, 20, 10},
		},
		Gameplay: BreakoutGameplay{
			Lives:         3,
			ServeDelay:    30,
			SpeedUpEveryN: 10, // Speed up every 10 bricks
			SpeedUpAmount: 20, // Add 0.02 to speed
		},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Formation: InvadersFormation{
			Rows:          4,
			Cols:          8,
			SpacingX:      4,
			SpacingY:      2,
			MarchTicks:    30,
			MinMarchTicks: 4,
			WaveSpeedUp:   4,
		},
		Player: InvadersPlayer{
			Lives:        3,
			MoveTicks:    3,
			ShotCooldown: 20,
			ShotTicks:    2,
			Invulnerable: 90,
		},
		Enemy: InvadersEnemy{
			ShotTicks:    4,
			FireInterval: 50,
			MaxShots:     3,
		},
		Scoring: InvadersScoring{
			Rows:      []int{30, 20, 20, 10},
			WaveBonus: 100,
		},
	}
}

// DefaultMemoryConfig returns the default Memory Match configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Board:   MemoryBoard{Cols: 4, Rows: 4},
		Timing:  MemoryTiming{TimeLimit: 5400, MismatchTicks: 45}, // 90 seconds
		Scoring: MemoryScoring{Match: 20, MismatchPenalty: 2, SecondBonus: 2},
	}
}

// DefaultBalloonConfig returns the default Balloon Pop configuration.
func DefaultBalloonConfig() BalloonConfig {
	return BalloonConfig{
		Field: BalloonField{Width: 40, Height: 18},
		Spawn: BalloonSpawn{
			IntervalTicks: 50,
			RiseTicks:     12,
			GoldenChance:  0.1,
			BombChance:    0.08,
		},
		Gameplay: BalloonGameplay{Lives: 3, RoundTicks: 3600, CursorStep: 2},
		Scoring:  BalloonScoring{Pop: 10, Golden: 50},
	}
}

// DefaultPuzzleConfig returns the default drag-drop puzzle configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Board:    PuzzleBoard{Cols: 3, Rows: 3},
		Gameplay: PuzzleGameplay{TimeLimit: 7200, ShuffleSwaps: 30}, // 2 minutes
	}
}

// DefaultSimonConfig returns the default Simon Says configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Timing: SimonTiming{
			FlashTicks:   24,
			GapTicks:     12,
			InputTimeout: 180,
			RoundDelay:   45,
		},
		Scoring: SimonScoring{Round: 10, MaxRounds: 20},
	}
}

// DefaultWhackConfig returns the default Whack-a-Mole configuration.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		Board:   WhackBoard{Cols: 3, Rows: 3, MaxMoles: 2},
		Timing:  WhackTiming{RoundTicks: 3600, SpawnTicks: 45, VisibleTicks: 70},
		Scoring: WhackScoring{Hit: 10, Miss: 0},
		Ramp:    RampConfig{Type: "time", MaxAt: 3600, SpeedBonus: 0.5},
	}
}
