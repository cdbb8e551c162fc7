package postings

import (
	"context"
	"errors"
	"log"
	"time"

	DB "github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	tasks "github.com/Deepak-csengineer05/zonavi-scms-sub000/src/jobs"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/matching"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/skills"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePosting - สร้างประกาศรับสมัครงาน และตั้งเวลาปิดอัตโนมัติตาม deadline
func CreatePosting(posting *models.JobPosting) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if posting.Title == "" {
		return errors.New("posting title is required")
	}
	if posting.Deadline.IsZero() {
		return errors.New("posting deadline is required")
	}
	if posting.SkillsRequired == nil {
		posting.SkillsRequired = []string{}
	}

	posting.ID = primitive.NewObjectID()
	posting.Active = true
	posting.CreatedAt = time.Now()
	if _, err := DB.JobPostingCollection.InsertOne(ctx, posting); err != nil {
		return err
	}

	scheduleClosePosting(posting.ID.Hex(), posting.Deadline)
	return nil
}

// GetPostings - ดึงประกาศทั้งหมดแบบแบ่งหน้า
func GetPostings(params models.PaginationParams) ([]models.JobPosting, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"company": regex},
		}
	}

	total, err := DB.JobPostingCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	order := 1
	if params.Order == "desc" {
		order = -1
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: params.SortBy, Value: order}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.JobPostingCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	postings := []models.JobPosting{}
	if err := cursor.All(ctx, &postings); err != nil {
		return nil, 0, err
	}
	return postings, total, nil
}

// GetActivePostings returns open postings whose deadline has not passed,
// soonest deadline first. This is the input the match engine expects.
func GetActivePostings() ([]models.JobPosting, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"active":   true,
		"deadline": bson.M{"$gte": time.Now()},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}})

	cursor, err := DB.JobPostingCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	postings := []models.JobPosting{}
	if err := cursor.All(ctx, &postings); err != nil {
		return nil, err
	}
	return postings, nil
}

// GetPostingByID - ดึงประกาศตาม ID
func GetPostingByID(id string) (*models.JobPosting, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid posting ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var posting models.JobPosting
	if err := DB.JobPostingCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&posting); err != nil {
		return nil, err
	}
	return &posting, nil
}

// UpdatePosting - อัปเดตประกาศ และตั้งเวลาปิดใหม่ถ้า deadline เปลี่ยน
func UpdatePosting(id string, posting *models.JobPosting) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid posting ID")
	}
	if posting.SkillsRequired == nil {
		posting.SkillsRequired = []string{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.JobPostingCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"title":          posting.Title,
			"company":        posting.Company,
			"location":       posting.Location,
			"description":    posting.Description,
			"skillsRequired": posting.SkillsRequired,
			"deadline":       posting.Deadline,
			"active":         posting.Active,
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("posting not found")
	}

	if posting.Active {
		scheduleClosePosting(id, posting.Deadline)
	}
	return nil
}

// DeletePosting - ลบประกาศ พร้อมยกเลิก task ปิดอัตโนมัติ
func DeletePosting(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid posting ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.JobPostingCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("posting not found")
	}

	deleteScheduledTask("close-posting-" + id)
	return nil
}

// RecommendationsForStudent ranks the currently open postings against one
// student's skill set.
func RecommendationsForStudent(studentID string, recommendedOnly bool) ([]models.RankedPosting, error) {
	names, err := skills.SkillNames(studentID)
	if err != nil {
		return nil, err
	}

	open, err := GetActivePostings()
	if err != nil {
		return nil, err
	}

	return matching.RankPostings(names, open, recommendedOnly), nil
}

// deleteScheduledTask ลบ task เก่าก่อน enqueue ใหม่
func deleteScheduledTask(taskID string) {
	if DB.RedisURI == "" {
		return
	}
	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: DB.RedisURI})
	err := inspector.DeleteTask("default", taskID)
	if err != nil && err != asynq.ErrTaskNotFound {
		log.Println("⚠️ Failed to delete old task "+taskID+", then skipping:", err)
	}
}

// scheduleClosePosting ตั้งเวลาปิดประกาศเมื่อถึง deadline
func scheduleClosePosting(postingID string, deadline time.Time) {
	if DB.AsynqClient == nil {
		log.Println("⚠️ Asynq not available. Posting will not auto-close:", postingID)
		return
	}
	if !deadline.After(time.Now()) {
		return
	}

	task, err := tasks.NewClosePostingTask(postingID)
	if err != nil {
		log.Println("❌ Failed to create close-posting task:", err)
		return
	}

	taskID := "close-posting-" + postingID
	deleteScheduledTask(taskID)
	if _, err := DB.AsynqClient.Enqueue(task, asynq.ProcessAt(deadline), asynq.TaskID(taskID)); err != nil {
		log.Println("❌ Failed to enqueue close-posting task:", err)
		return
	}
	log.Printf("✅ Task scheduled: %s | RunAt=%s", taskID, deadline.Format(time.RFC3339))
}
