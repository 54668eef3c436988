package dto

import (
	"taskmanager/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      RoleResponse{Name: user.Role.Name},
		CreatedAt: user.CreatedAt,
	}
}

func UsersToUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = *UserToUserResponse(u)
	}
	return out
}

func userToRef(user *models.User) *UserRef {
	if user == nil {
		return nil
	}
	return &UserRef{ID: user.ID, Email: user.Email}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		DueDate:         task.DueDate,
		Priority:        task.Priority,
		Status:          task.Status,
		Type:            task.Type,
		CreatedBy:       userToRef(task.CreatedBy),
		AssignedTo:      userToRef(task.AssignedTo),
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
		CompletionDate:  task.CompletionDate,
		RecurringTask:   task.RecurringTask,
		Estimate:        task.Estimate,
		ActualTimeSpent: task.ActualTimeSpent,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = *TaskToTaskResponse(t)
	}
	return out
}

func CommentToCommentResponse(comment *models.Comment) *CommentResponse {
	if comment == nil {
		return nil
	}
	return &CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		TaskID:    comment.TaskID,
		CreatedAt: comment.CreatedAt,
	}
}

func CommentsToCommentResponses(comments []*models.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = *CommentToCommentResponse(c)
	}
	return out
}
