package common

import (
	"errors"
	"time"

	"hms/src/db"
	"hms/src/models"
	"hms/src/types"

	"gorm.io/gorm"
)

var ErrTaskClosed = errors.New("task is already closed")

// CompleteHousekeepingTask closes the task and, for cleaning work, returns
// the room to available. Both writes commit together.
func CompleteHousekeepingTask(id uint, body *types.CompleteTaskRequestBody) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}
		if !task.IsOpen() {
			return ErrTaskClosed
		}
		now := time.Now()
		task.Status = types.TASK_COMPLETED
		task.CompletedAt = &now
		if task.StartedAt != nil {
			minutes := int64(now.Sub(*task.StartedAt).Minutes())
			task.ActualDuration = &minutes
		}
		if body.Notes != "" {
			task.Notes = body.Notes
		}
		task.QualityScore = body.QualityScore
		task.QualityNotes = body.QualityNotes
		if err := tx.Save(&task).Error; err != nil {
			return err
		}
		if task.TaskType.CleansRoom() {
			if err := tx.
				Model(&models.Room{}).
				Where("id = ?", task.RoomID).
				Update("status", types.ROOM_AVAILABLE).
				Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}
