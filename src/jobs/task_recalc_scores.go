package jobs

import (
	"context"
	"log"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/scoring"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
)

// HandleRecalcAllScoresTask คำนวณคะแนนใหม่ของนิสิตทุกคน - admin triggered
func HandleRecalcAllScoresTask(ctx context.Context, t *asynq.Task) error {
	cursor, err := database.StudentCollection.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	recalculated := 0
	for cursor.Next(ctx) {
		var student models.Student
		if err := cursor.Decode(&student); err != nil {
			log.Println("⚠️ Skipping undecodable student:", err)
			continue
		}
		scoring.ComputeAndPersistScore(student.ID.Hex())
		recalculated++
	}

	log.Printf("✅ Recalculated career scores for %d students", recalculated)
	return cursor.Err()
}
