package jobs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleClosePostingTask ปิดประกาศเมื่อถึง deadline
func HandleClosePostingTask(ctx context.Context, t *asynq.Task) error {
	var payload PostingPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	objID, err := primitive.ObjectIDFromHex(payload.PostingID)
	if err != nil {
		return err
	}

	collection := database.GetCollection(database.DBName, "jobPostings")

	var posting bson.M
	err = collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&posting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Posting not found. Possibly deleted. Skipping task:", objID.Hex())
			return nil
		}
		return err
	}

	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		log.Println("❌ Failed to close posting:", err)
		return err
	}

	log.Println("✅ Posting auto-closed after deadline:", payload.PostingID)
	return nil
}
