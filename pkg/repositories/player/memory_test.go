package player

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/luckyseven/casino/pkg/entities"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.ctx = context.Background()
}

func (s *MemoryStoreTestSuite) seedPlayer(balance int64) *entities.Player {
	p := &entities.Player{ID: "p1", Name: "Test", Balance: balance}
	s.Require().NoError(s.store.SavePlayer(s.ctx, p))
	return p
}

func (s *MemoryStoreTestSuite) TestSaveAndGetPlayer() {
	// Setup
	p := s.seedPlayer(100)

	// Execute
	got, err := s.store.GetPlayer(s.ctx, p.ID)

	// Assert
	s.Require().NoError(err)
	s.Equal(p.ID, got.ID)
	s.Equal(int64(100), got.Balance)

	// Mutating the returned copy must not touch the stored record
	got.Balance = 0
	again, err := s.store.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(int64(100), again.Balance, "store should hand out copies")
}

func (s *MemoryStoreTestSuite) TestGetPlayerNotFound() {
	_, err := s.store.GetPlayer(s.ctx, "missing")
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *MemoryStoreTestSuite) TestUpdateBalance() {
	p := s.seedPlayer(100)

	s.Require().NoError(s.store.UpdateBalance(s.ctx, p.ID, 130))

	got, err := s.store.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(int64(130), got.Balance)
}

func (s *MemoryStoreTestSuite) TestUpdateBalanceRejectsNegative() {
	p := s.seedPlayer(100)

	err := s.store.UpdateBalance(s.ctx, p.ID, -1)
	s.ErrorIs(err, ErrNegativeBalance)

	got, getErr := s.store.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(getErr)
	s.Equal(int64(100), got.Balance, "a rejected update must not change the balance")
}

func (s *MemoryStoreTestSuite) TestUpdateBalanceUnknownPlayer() {
	err := s.store.UpdateBalance(s.ctx, "missing", 50)
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *MemoryStoreTestSuite) TestApplyPlay() {
	// Setup
	p := s.seedPlayer(100)
	tx := &entities.Transaction{
		PlayerID: p.ID,
		Game:     entities.GameSlots,
		Bet:      10,
		Result:   entities.GameResult{Won: true, Amount: 30, NewBalance: 130},
	}

	// Execute
	newBalance, err := s.store.ApplyPlay(s.ctx, p.ID, 30, tx)

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(130), newBalance)

	got, err := s.store.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(int64(130), got.Balance)

	transactions, err := s.store.GetTransactions(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(entities.GameSlots, transactions[0].Game)
	s.NotEmpty(transactions[0].ID, "the store fills in a transaction id")
	s.False(transactions[0].Timestamp.IsZero(), "the store fills in a timestamp")
}

func (s *MemoryStoreTestSuite) TestApplyPlayComputesBalanceFromTheStore() {
	// Two plays resolved against the same read copy must still both land:
	// the store derives each new balance from what it holds, not from the
	// caller's snapshot.
	p := s.seedPlayer(100)

	for i := 0; i < 2; i++ {
		tx := &entities.Transaction{
			PlayerID: p.ID,
			Game:     entities.GameSlots,
			Bet:      10,
			Result:   entities.GameResult{Won: false, Amount: -10, NewBalance: 90},
		}
		newBalance, err := s.store.ApplyPlay(s.ctx, p.ID, -10, tx)
		s.Require().NoError(err)
		s.Equal(int64(100-10*(i+1)), newBalance, "each play must see the previous play's deduction")
	}

	got, err := s.store.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(int64(80), got.Balance)

	transactions, err := s.store.GetTransactions(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(transactions, 2)
	s.Equal(int64(90), transactions[0].Result.NewBalance)
	s.Equal(int64(80), transactions[1].Result.NewBalance,
		"the logged balance comes from the store, not the stale snapshot")
}

func (s *MemoryStoreTestSuite) TestApplyPlayUnknownPlayer() {
	tx := &entities.Transaction{PlayerID: "missing", Game: entities.GameSlots, Bet: 10}

	_, err := s.store.ApplyPlay(s.ctx, "missing", -10, tx)
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *MemoryStoreTestSuite) TestApplyPlayRejectedLeavesNoEntry() {
	p := s.seedPlayer(100)
	tx := &entities.Transaction{PlayerID: p.ID, Game: entities.GameSlots, Bet: 10}

	// An amount that would push the balance below zero is refused outright
	_, err := s.store.ApplyPlay(s.ctx, p.ID, -150, tx)
	s.ErrorIs(err, ErrNegativeBalance)

	got, getErr := s.store.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(getErr)
	s.Equal(int64(100), got.Balance, "balance must be untouched")

	transactions, txErr := s.store.GetTransactions(s.ctx, p.ID)
	s.Require().NoError(txErr)
	s.Empty(transactions, "no log entry may appear for a rejected play")
}

func (s *MemoryStoreTestSuite) TestGetTransactionsOrderAndIsolation() {
	p := s.seedPlayer(100)

	for _, bet := range []int64{10, 20, 30} {
		tx := &entities.Transaction{PlayerID: p.ID, Game: entities.GameRoulette, Bet: bet}
		_, err := s.store.ApplyPlay(s.ctx, p.ID, -10, tx)
		s.Require().NoError(err)
	}

	transactions, err := s.store.GetTransactions(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(transactions, 3)
	s.Equal(int64(10), transactions[0].Bet, "entries keep insertion order")
	s.Equal(int64(30), transactions[2].Bet)

	// Mutating a returned entry must not affect the log
	transactions[0].Bet = 999
	again, err := s.store.GetTransactions(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(int64(10), again[0].Bet)
}

func (s *MemoryStoreTestSuite) TestGetTransactionsEmpty() {
	transactions, err := s.store.GetTransactions(s.ctx, "anyone")
	s.Require().NoError(err)
	s.NotNil(transactions)
	s.Empty(transactions, "no history is an empty slice, not an error")
}
