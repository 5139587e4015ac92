package repository

import (
	"testing"

	"eduforum_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleVoteInsert(t *testing.T) {
	db := setupDB(t)
	repo := NewAnswerRepository(db)

	asker := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	question := seedQuestion(t, db, asker.ID, "vote target")
	answer := seedAnswer(t, db, question.ID, asker.ID, "the answer")

	likes, dislikes, err := repo.ToggleVote(voter.ID, answer.ID, model.VoteLike)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, int64(0), dislikes)

	vote, err := repo.FindVote(voter.ID, answer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VoteLike, vote.VoteType)
}

func TestToggleVoteSameTypeRemoves(t *testing.T) {
	db := setupDB(t)
	repo := NewAnswerRepository(db)

	asker := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	question := seedQuestion(t, db, asker.ID, "vote target")
	answer := seedAnswer(t, db, question.ID, asker.ID, "the answer")

	_, _, err := repo.ToggleVote(voter.ID, answer.ID, model.VoteDislike)
	require.NoError(t, err)

	likes, dislikes, err := repo.ToggleVote(voter.ID, answer.ID, model.VoteDislike)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(0), dislikes)

	_, err = repo.FindVote(voter.ID, answer.ID)
	assert.Error(t, err)
}

func TestToggleVoteSwitchesInPlace(t *testing.T) {
	db := setupDB(t)
	repo := NewAnswerRepository(db)

	asker := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	question := seedQuestion(t, db, asker.ID, "vote target")
	answer := seedAnswer(t, db, question.ID, asker.ID, "the answer")

	_, _, err := repo.ToggleVote(voter.ID, answer.ID, model.VoteLike)
	require.NoError(t, err)

	likes, dislikes, err := repo.ToggleVote(voter.ID, answer.ID, model.VoteDislike)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(1), dislikes)

	// 同一 (user, answer) 始终只有一行
	var rows int64
	require.NoError(t, db.Model(&model.AnswerVote{}).
		Where("user_id = ? AND answer_id = ?", voter.ID, answer.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestToggleVoteReconcilesCounters(t *testing.T) {
	db := setupDB(t)
	repo := NewAnswerRepository(db)

	asker := seedUser(t, db, "alice")
	question := seedQuestion(t, db, asker.ID, "vote target")
	answer := seedAnswer(t, db, question.ID, asker.ID, "the answer")

	// 聚合字段先被污染
	require.NoError(t, db.Model(&model.Answer{}).Where("id = ?", answer.ID).
		Updates(map[string]interface{}{"like_count": 50, "dislike_count": 50}).Error)

	up := seedUser(t, db, "bob")
	down := seedUser(t, db, "carol")

	_, _, err := repo.ToggleVote(up.ID, answer.ID, model.VoteLike)
	require.NoError(t, err)
	likes, dislikes, err := repo.ToggleVote(down.ID, answer.ID, model.VoteDislike)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, int64(1), dislikes)

	var reloaded model.Answer
	require.NoError(t, db.First(&reloaded, answer.ID).Error)
	assert.Equal(t, 1, reloaded.LikeCount)
	assert.Equal(t, 1, reloaded.DislikeCount)
}

func TestAnswerDeleteCleansVotes(t *testing.T) {
	db := setupDB(t)
	repo := NewAnswerRepository(db)

	asker := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	question := seedQuestion(t, db, asker.ID, "vote target")
	answer := seedAnswer(t, db, question.ID, asker.ID, "the answer")

	_, _, err := repo.ToggleVote(voter.ID, answer.ID, model.VoteLike)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(answer.ID))

	var votes int64
	require.NoError(t, db.Model(&model.AnswerVote{}).Count(&votes).Error)
	assert.Zero(t, votes)
}

func TestFindByQuestionIDOrdersByLikes(t *testing.T) {
	db := setupDB(t)
	repo := NewAnswerRepository(db)

	asker := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	question := seedQuestion(t, db, asker.ID, "vote target")

	plain := seedAnswer(t, db, question.ID, asker.ID, "plain answer")
	popular := seedAnswer(t, db, question.ID, asker.ID, "popular answer")

	_, _, err := repo.ToggleVote(voter.ID, popular.ID, model.VoteLike)
	require.NoError(t, err)

	answers, err := repo.FindByQuestionID(question.ID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, popular.ID, answers[0].ID)
	assert.Equal(t, plain.ID, answers[1].ID)
}

func TestVerifyOnlySetsFlag(t *testing.T) {
	db := setupDB(t)
	repo := NewAnswerRepository(db)

	asker := seedUser(t, db, "alice")
	question := seedQuestion(t, db, asker.ID, "vote target")
	answer := seedAnswer(t, db, question.ID, asker.ID, "the answer")

	require.NoError(t, repo.Verify(answer.ID))

	reloaded, err := repo.FindByID(answer.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsVerified)
	assert.Equal(t, "the answer", reloaded.AnswerText)
}

func TestAnswerCountLikesReceived(t *testing.T) {
	db := setupDB(t)
	repo := NewAnswerRepository(db)

	asker := seedUser(t, db, "alice")
	helper := seedUser(t, db, "bob")
	voter := seedUser(t, db, "carol")
	question := seedQuestion(t, db, asker.ID, "vote target")
	answer := seedAnswer(t, db, question.ID, helper.ID, "helpful answer")

	_, _, err := repo.ToggleVote(voter.ID, answer.ID, model.VoteLike)
	require.NoError(t, err)
	_, _, err = repo.ToggleVote(asker.ID, answer.ID, model.VoteDislike)
	require.NoError(t, err)

	// 点踩不计入获赞数
	count, err := repo.CountLikesReceived(helper.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
