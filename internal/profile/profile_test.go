package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hleth/pokerledger/internal/dependencies/mocks"
	"github.com/hleth/pokerledger/internal/model"
)

type ProfileSuite struct {
	suite.Suite
	random *mocks.MockRandom
	file   string
}

func TestProfileSuite(t *testing.T) {
	suite.Run(t, new(ProfileSuite))
}

func (s *ProfileSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.file = filepath.Join(s.T().TempDir(), ".pokerledger", "profile")
	s.T().Setenv(EnvVar, "")
}

func (s *ProfileSuite) TestGeneratesAndStoresOnFirstRun() {
	s.random.QueueUUID("fresh-id")

	id, err := Resolve(s.file, s.random)
	s.Require().NoError(err)
	s.Equal(model.ProfileID("fresh-id"), id)

	data, err := os.ReadFile(s.file)
	s.Require().NoError(err)
	s.Equal("fresh-id\n", string(data))
}

func (s *ProfileSuite) TestReusesStoredID() {
	s.random.QueueUUID("first")
	first, err := Resolve(s.file, s.random)
	s.Require().NoError(err)

	s.random.QueueUUID("second")
	again, err := Resolve(s.file, s.random)
	s.Require().NoError(err)
	s.Equal(first, again)
}

func (s *ProfileSuite) TestTrimsStoredID() {
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.file), 0700))
	s.Require().NoError(os.WriteFile(s.file, []byte("  stored-id\n"), 0600))

	id, err := Resolve(s.file, s.random)
	s.Require().NoError(err)
	s.Equal(model.ProfileID("stored-id"), id)
}

func (s *ProfileSuite) TestEmptyFileRegenerates() {
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.file), 0700))
	s.Require().NoError(os.WriteFile(s.file, []byte("\n"), 0600))
	s.random.QueueUUID("regenerated")

	id, err := Resolve(s.file, s.random)
	s.Require().NoError(err)
	s.Equal(model.ProfileID("regenerated"), id)
}

func (s *ProfileSuite) TestEnvOverrideWins() {
	s.T().Setenv(EnvVar, "env-id")
	s.random.QueueUUID("ignored")

	id, err := Resolve(s.file, s.random)
	s.Require().NoError(err)
	s.Equal(model.ProfileID("env-id"), id)

	// nothing written when the override is in effect
	_, err = os.Stat(s.file)
	s.True(os.IsNotExist(err))
}
