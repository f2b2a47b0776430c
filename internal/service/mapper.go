package service

import (
	"quiz-deck/internal/domain"
	"quiz-deck/internal/dto"
)

func toOptionResponses(q domain.Question) []dto.OptionResponse {
	opts := make([]dto.OptionResponse, 0, len(domain.ChoiceLabels))
	for _, label := range domain.ChoiceLabels {
		opts = append(opts, dto.OptionResponse{Label: string(label), Text: q.Options[label]})
	}
	return opts
}

// toSessionResponse exposes the current question without its answer key during the quiz,
// and the scored review once the session has results.
func toSessionResponse(session *domain.QuizSession) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:            session.ID,
		PoolID:        session.PoolID,
		Phase:         string(session.Phase),
		CurrentIndex:  session.CurrentIndex,
		Total:         session.SelectedCount,
		AnsweredCount: session.AnsweredCount(),
		IsLast:        session.IsLastQuestion(),
	}

	switch session.Phase {
	case domain.PhaseQuiz:
		if q, ok := session.CurrentQuestion(); ok {
			resp.Question = &dto.QuestionResponse{
				ID:      q.ID,
				Prompt:  q.Prompt,
				Options: toOptionResponses(q),
			}
			resp.SelectedAnswer = string(session.Answers[q.ID])
		}
	case domain.PhaseResults:
		if session.Results != nil {
			resp.Results = toResultsResponse(session.Results)
		}
	}
	return resp
}

func toResultsResponse(r *domain.QuizResults) *dto.ResultsResponse {
	resp := &dto.ResultsResponse{
		Correct:    r.Correct,
		Incorrect:  r.Incorrect,
		Total:      r.Total,
		Percentage: r.Percentage,
		Excellent:  r.Excellent,
		Review:     make([]dto.ReviewItemResponse, 0, len(r.Review)),
	}
	for _, item := range r.Review {
		resp.Review = append(resp.Review, dto.ReviewItemResponse{
			QuestionID:    item.Question.ID,
			Prompt:        item.Question.Prompt,
			Options:       toOptionResponses(item.Question),
			CorrectAnswer: string(item.Question.Correct),
			UserAnswer:    string(item.UserAnswer),
			IsCorrect:     item.IsCorrect,
			Explanation:   item.Question.Explanation,
		})
	}
	return resp
}
