package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"quiz-deck/internal/adapter"
	"quiz-deck/internal/domain"
	"quiz-deck/internal/dto"
	"quiz-deck/internal/sampler"
	"quiz-deck/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	svc     SessionService
	pools   *MockPoolService
	results *MockResultRepository
	store   SessionStore
	poolID  string
	pool    domain.Pool
}

func newSessionFixture(t *testing.T, poolSize int) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		pools:   new(MockPoolService),
		results: new(MockResultRepository),
		store:   NewSessionStore(adapter.NewMemoryCacheAdapter(0), testQuizConfig.SessionTTL),
		poolID:  util.NewULID(),
		pool:    makePool(poolSize),
	}
	f.pools.On("GetQuestions", mock.Anything, f.poolID).Return(f.pool, nil)
	smp := sampler.New(rand.New(rand.NewPCG(1, 2)))
	f.svc = NewSessionService(f.pools, f.store, f.results, smp, testQuizConfig)
	return f
}

func (f *sessionFixture) start(t *testing.T, count int) *dto.SessionResponse {
	t.Helper()
	resp, err := f.svc.StartSession(context.Background(), &dto.StartSessionRequest{PoolID: f.poolID, Count: count})
	require.NoError(t, err)
	return resp
}

// answerAll answers every question of the stored session with its correct label except those in wrong.
func (f *sessionFixture) answerAll(t *testing.T, sessionID string, wrong map[int]bool) {
	t.Helper()
	ctx := context.Background()
	session, err := f.store.Load(ctx, sessionID)
	require.NoError(t, err)

	for i, q := range session.Questions {
		label := q.Correct
		if wrong[i] {
			label = domain.ChoiceLabels[(indexOf(q.Correct)+1)%4]
		}
		_, err := f.svc.Answer(ctx, sessionID, string(label))
		require.NoError(t, err)
		if i < len(session.Questions)-1 {
			_, err = f.svc.Next(ctx, sessionID)
			require.NoError(t, err)
		}
	}
}

func indexOf(label domain.ChoiceLabel) int {
	for i, l := range domain.ChoiceLabels {
		if l == label {
			return i
		}
	}
	return -1
}

func TestSessionService_StartSession(t *testing.T) {
	f := newSessionFixture(t, 12)
	resp := f.start(t, 5)

	assert.True(t, util.IsULID(resp.ID))
	assert.Equal(t, f.poolID, resp.PoolID)
	assert.Equal(t, string(domain.PhaseQuiz), resp.Phase)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 0, resp.CurrentIndex)
	assert.Equal(t, 0, resp.AnsweredCount)
	require.NotNil(t, resp.Question)
	assert.Len(t, resp.Question.Options, 4)
	assert.Nil(t, resp.Results)

	session, err := f.store.Load(context.Background(), resp.ID)
	require.NoError(t, err)
	ids := make(map[string]bool)
	for _, q := range session.Questions {
		assert.False(t, ids[q.ID], "duplicate question %s", q.ID)
		ids[q.ID] = true
	}
	assert.Len(t, ids, 5)
}

func TestSessionService_StartSession_CountBounds(t *testing.T) {
	f := newSessionFixture(t, 5)
	ctx := context.Background()

	resp := f.start(t, 5)
	assert.Equal(t, 5, resp.Total)
	resp = f.start(t, 1)
	assert.Equal(t, 1, resp.Total)

	for _, count := range []int{0, -1, 6, 100} {
		_, err := f.svc.StartSession(ctx, &dto.StartSessionRequest{PoolID: f.poolID, Count: count})
		var verrs domain.ValidationErrors
		require.True(t, errors.As(err, &verrs), "count %d: got %v", count, err)
		assert.Equal(t, "count", verrs[0].Field)
	}
}

func TestSessionService_StartSession_InvalidRequest(t *testing.T) {
	f := newSessionFixture(t, 5)
	ctx := context.Background()

	_, err := f.svc.StartSession(ctx, &dto.StartSessionRequest{PoolID: "nope", Count: 3})
	var verrs domain.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	_, err = f.svc.StartSession(ctx, nil)
	requireDomainCode(t, err, domain.CodeInvalidInput)

	missing := util.NewULID()
	f.pools.On("GetQuestions", mock.Anything, missing).Return(nil, domain.NewPoolNotFoundError(missing))
	_, err = f.svc.StartSession(ctx, &dto.StartSessionRequest{PoolID: missing, Count: 3})
	requireDomainCode(t, err, domain.CodePoolNotFound)
}

func TestSessionService_QuizViewHidesAnswerKey(t *testing.T) {
	f := newSessionFixture(t, 3)
	resp := f.start(t, 3)
	require.NotNil(t, resp.Question)
	assert.Nil(t, resp.Results)

	// The quiz view type carries no correct label or explanation fields at all; check the answer
	// is only echoed back once chosen.
	assert.Empty(t, resp.SelectedAnswer)
	resp, err := f.svc.Answer(context.Background(), resp.ID, "c")
	require.NoError(t, err)
	assert.Equal(t, "C", resp.SelectedAnswer)
	assert.Equal(t, 1, resp.AnsweredCount)
}

func TestSessionService_Navigation(t *testing.T) {
	f := newSessionFixture(t, 4)
	ctx := context.Background()
	id := f.start(t, 3).ID

	resp, err := f.svc.Previous(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentIndex)

	resp, err = f.svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentIndex)

	resp, err = f.svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CurrentIndex)
	assert.True(t, resp.IsLast)

	resp, err = f.svc.Previous(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentIndex)
	assert.False(t, resp.IsLast)
}

func TestSessionService_NextOnLastQuestionCompletes(t *testing.T) {
	f := newSessionFixture(t, 5)
	ctx := context.Background()
	id := f.start(t, 5).ID

	f.results.On("SaveResult", mock.Anything, mock.MatchedBy(func(r *domain.ResultRecord) bool {
		return r.SessionID == id && r.PoolID == f.poolID && r.Total == 5 && r.Correct == 4 && r.Percentage == 80
	})).Return(nil).Once()

	f.answerAll(t, id, map[int]bool{2: true})
	resp, err := f.svc.Next(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, string(domain.PhaseResults), resp.Phase)
	assert.Nil(t, resp.Question)
	require.NotNil(t, resp.Results)
	assert.Equal(t, 4, resp.Results.Correct)
	assert.Equal(t, 1, resp.Results.Incorrect)
	assert.Equal(t, 80, resp.Results.Percentage)
	assert.True(t, resp.Results.Excellent)
	require.Len(t, resp.Results.Review, 5)
	assert.False(t, resp.Results.Review[2].IsCorrect)
	assert.NotEmpty(t, resp.Results.Review[2].CorrectAnswer)
	assert.NotEmpty(t, resp.Results.Review[2].Explanation)
	f.results.AssertExpectations(t)
}

func TestSessionService_SubmitEarlyCountsUnansweredAsIncorrect(t *testing.T) {
	f := newSessionFixture(t, 3)
	ctx := context.Background()
	id := f.start(t, 3).ID

	session, err := f.store.Load(ctx, id)
	require.NoError(t, err)
	_, err = f.svc.Answer(ctx, id, string(session.Questions[0].Correct))
	require.NoError(t, err)

	f.results.On("SaveResult", mock.Anything, mock.Anything).Return(nil)
	resp, err := f.svc.Submit(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, resp.Results)
	assert.Equal(t, 1, resp.Results.Correct)
	assert.Equal(t, 2, resp.Results.Incorrect)
	assert.Equal(t, 33, resp.Results.Percentage)
	assert.False(t, resp.Results.Excellent)
	assert.Empty(t, resp.Results.Review[1].UserAnswer)
}

func TestSessionService_ResultPersistenceFailureIsNotReturned(t *testing.T) {
	f := newSessionFixture(t, 2)
	ctx := context.Background()
	id := f.start(t, 2).ID

	f.results.On("SaveResult", mock.Anything, mock.Anything).Return(errors.New("database is locked"))
	resp, err := f.svc.Submit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.PhaseResults), resp.Phase)

	results, err := f.svc.GetResults(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, results.Total)
}

func TestSessionService_PhaseErrors(t *testing.T) {
	f := newSessionFixture(t, 3)
	ctx := context.Background()
	id := f.start(t, 2).ID

	_, err := f.svc.Retake(ctx, id)
	requireDomainCode(t, err, domain.CodeInvalidPhase)
	_, err = f.svc.GetResults(ctx, id)
	requireDomainCode(t, err, domain.CodeInvalidPhase)

	f.results.On("SaveResult", mock.Anything, mock.Anything).Return(nil)
	_, err = f.svc.Submit(ctx, id)
	require.NoError(t, err)

	_, err = f.svc.Answer(ctx, id, "A")
	requireDomainCode(t, err, domain.CodeInvalidPhase)
	_, err = f.svc.Next(ctx, id)
	requireDomainCode(t, err, domain.CodeInvalidPhase)
	_, err = f.svc.Previous(ctx, id)
	requireDomainCode(t, err, domain.CodeInvalidPhase)
	_, err = f.svc.Submit(ctx, id)
	requireDomainCode(t, err, domain.CodeInvalidPhase)

	// Only the first completion is recorded.
	f.results.AssertNumberOfCalls(t, "SaveResult", 1)
}

func TestSessionService_InvalidChoice(t *testing.T) {
	f := newSessionFixture(t, 3)
	id := f.start(t, 1).ID

	_, err := f.svc.Answer(context.Background(), id, "Z")
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, domain.CodeInvalidFormat, verrs[0].Code)
}

func TestSessionService_Retake(t *testing.T) {
	f := newSessionFixture(t, 10)
	ctx := context.Background()
	id := f.start(t, 4).ID
	f.results.On("SaveResult", mock.Anything, mock.Anything).Return(nil)

	f.answerAll(t, id, nil)
	_, err := f.svc.Submit(ctx, id)
	require.NoError(t, err)

	before, err := f.store.Load(ctx, id)
	require.NoError(t, err)

	resp, err := f.svc.Retake(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, string(domain.PhaseQuiz), resp.Phase)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 0, resp.CurrentIndex)
	assert.Equal(t, 0, resp.AnsweredCount)
	assert.Nil(t, resp.Results)

	after, err := f.store.Load(ctx, id)
	require.NoError(t, err)
	assert.Len(t, after.Questions, 4)
	assert.Empty(t, after.Answers)
	assert.NotEqual(t, before.Questions.IDs(), after.Questions.IDs(), "a retake draws a fresh selection")
	// One selection for the start, one for the retake.
	f.pools.AssertNumberOfCalls(t, "GetQuestions", 2)
}

func TestSessionService_UnknownSession(t *testing.T) {
	f := newSessionFixture(t, 3)
	ctx := context.Background()
	missing := util.NewULID()

	_, err := f.svc.GetSession(ctx, missing)
	requireDomainCode(t, err, domain.CodeSessionNotFound)
	_, err = f.svc.Next(ctx, missing)
	requireDomainCode(t, err, domain.CodeSessionNotFound)
	_, err = f.svc.GetResults(ctx, missing)
	requireDomainCode(t, err, domain.CodeSessionNotFound)
}

func TestSessionService_Reset(t *testing.T) {
	f := newSessionFixture(t, 3)
	ctx := context.Background()
	id := f.start(t, 2).ID

	require.NoError(t, f.svc.Reset(ctx, id))
	_, err := f.svc.GetSession(ctx, id)
	requireDomainCode(t, err, domain.CodeSessionNotFound)

	assert.NoError(t, f.svc.Reset(ctx, id))
}
