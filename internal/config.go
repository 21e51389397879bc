package internal

import (
	"time"
)

type Config struct {
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
	AssistantName  string        `env:"ASSISTANT_NAME,required=true"`
	ReplyDelay     time.Duration `env:"REPLY_DELAY,required=true"`
	HistoryLimit   *int          `env:"HISTORY_LIMIT"`
	RandomSeed     *int64        `env:"RANDOM_SEED"`
}
