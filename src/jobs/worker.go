package jobs

import (
	"log"

	"github.com/hibiken/asynq"
)

// RunWorker starts the Asynq server and blocks. Call from a goroutine.
func RunWorker(redisURI string) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeClosePosting, HandleClosePostingTask)
	mux.HandleFunc(TypeRecalcAllScores, HandleRecalcAllScoresTask)

	if err := srv.Run(mux); err != nil {
		log.Fatal("❌ Asynq worker failed:", err)
	}
}
