package repository

import (
	"testing"

	"eduforum_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeInsertAndRemove(t *testing.T) {
	db := setupDB(t)
	repo := NewQuestionRepository(db)

	user := seedUser(t, db, "alice")
	question := seedQuestion(t, db, user.ID, "toggle target")

	liked, count, err := repo.ToggleLike(user.ID, question.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	// 再点一次取消
	liked, count, err = repo.ToggleLike(user.ID, question.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)

	// 成员行已物理删除
	has, err := repo.HasLiked(user.ID, question.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestToggleLikeMultipleUsers(t *testing.T) {
	db := setupDB(t)
	repo := NewQuestionRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	question := seedQuestion(t, db, alice.ID, "popular question")

	_, _, err := repo.ToggleLike(alice.ID, question.ID)
	require.NoError(t, err)
	_, count, err := repo.ToggleLike(bob.ID, question.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// alice 取消后 bob 的赞保留
	_, count, err = repo.ToggleLike(alice.ID, question.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	has, err := repo.HasLiked(bob.ID, question.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestToggleLikeReconcilesDriftedCounter(t *testing.T) {
	db := setupDB(t)
	repo := NewQuestionRepository(db)

	user := seedUser(t, db, "alice")
	question := seedQuestion(t, db, user.ID, "drifted counter")

	// 人为制造聚合字段与成员行不一致
	require.NoError(t, db.Model(&model.Question{}).Where("id = ?", question.ID).Update("like_count", 99).Error)

	_, count, err := repo.ToggleLike(user.ID, question.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var reloaded model.Question
	require.NoError(t, db.First(&reloaded, question.ID).Error)
	assert.Equal(t, 1, reloaded.LikeCount)
}

func TestFindWithFilters(t *testing.T) {
	db := setupDB(t)
	repo := NewQuestionRepository(db)
	user := seedUser(t, db, "alice")

	math := seedQuestion(t, db, user.ID, "algebra homework help")
	physics := &model.Question{
		UserID:  user.ID,
		Title:   "gravity direction puzzle",
		Details: "why do things fall down",
		Subject: "Physics",
		Grade:   "Grade 11",
	}
	require.NoError(t, db.Create(physics).Error)

	questions, total, err := repo.FindWithFilters(0, 20, "Mathematics", "", "", "new")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, questions, 1)
	assert.Equal(t, math.ID, questions[0].ID)

	questions, total, err = repo.FindWithFilters(0, 20, "", "Grade 11", "", "new")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, physics.ID, questions[0].ID)

	// 搜索命中标题或详情
	_, total, err = repo.FindWithFilters(0, 20, "", "", "fall down", "new")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = repo.FindWithFilters(0, 20, "", "", "", "new")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestFindWithFiltersTopSort(t *testing.T) {
	db := setupDB(t)
	repo := NewQuestionRepository(db)
	user := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")

	first := seedQuestion(t, db, user.ID, "older but liked")
	second := seedQuestion(t, db, user.ID, "newer no likes")

	_, _, err := repo.ToggleLike(voter.ID, first.ID)
	require.NoError(t, err)

	questions, _, err := repo.FindWithFilters(0, 20, "", "", "", "top")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, first.ID, questions[0].ID)
	assert.Equal(t, second.ID, questions[1].ID)
}

func TestQuestionDeleteCascades(t *testing.T) {
	db := setupDB(t)
	questionRepo := NewQuestionRepository(db)
	answerRepo := NewAnswerRepository(db)

	asker := seedUser(t, db, "alice")
	helper := seedUser(t, db, "bob")
	question := seedQuestion(t, db, asker.ID, "to be deleted")
	answer := seedAnswer(t, db, question.ID, helper.ID, "an answer")

	_, _, err := questionRepo.ToggleLike(helper.ID, question.ID)
	require.NoError(t, err)
	_, _, err = answerRepo.ToggleVote(asker.ID, answer.ID, model.VoteLike)
	require.NoError(t, err)

	require.NoError(t, questionRepo.Delete(question.ID))

	var questionVotes, answerVotes, answers int64
	require.NoError(t, db.Model(&model.QuestionVote{}).Count(&questionVotes).Error)
	require.NoError(t, db.Model(&model.AnswerVote{}).Count(&answerVotes).Error)
	require.NoError(t, db.Model(&model.Answer{}).Count(&answers).Error)
	assert.Zero(t, questionVotes)
	assert.Zero(t, answerVotes)
	assert.Zero(t, answers)

	_, err = questionRepo.FindByID(question.ID)
	assert.Error(t, err)
}

func TestCountLikesReceived(t *testing.T) {
	db := setupDB(t)
	repo := NewQuestionRepository(db)

	asker := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	other := seedUser(t, db, "carol")

	q1 := seedQuestion(t, db, asker.ID, "first question")
	q2 := seedQuestion(t, db, asker.ID, "second question")

	_, _, err := repo.ToggleLike(voter.ID, q1.ID)
	require.NoError(t, err)
	_, _, err = repo.ToggleLike(other.ID, q1.ID)
	require.NoError(t, err)
	_, _, err = repo.ToggleLike(voter.ID, q2.ID)
	require.NoError(t, err)

	count, err := repo.CountLikesReceived(asker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.CountLikesReceived(voter.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFindLikedByUser(t *testing.T) {
	db := setupDB(t)
	repo := NewQuestionRepository(db)

	asker := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")

	liked := seedQuestion(t, db, asker.ID, "the liked one")
	seedQuestion(t, db, asker.ID, "the ignored one")

	_, _, err := repo.ToggleLike(voter.ID, liked.ID)
	require.NoError(t, err)

	questions, err := repo.FindLikedByUser(voter.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, liked.ID, questions[0].ID)
}
