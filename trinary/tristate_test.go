package trinary

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/worldrules/ruleexport/tokens"
)

// KleeneLogicSuite exercises the Kleene truth tables that back the
// resolver's AND/OR/NOT constant folding (§5) — every row of the
// And/Or/Not tables documented on Value's methods is checked here so
// a regression in the folding logic shows up as a trinary test
// failure, not just as a wrong rule-graph shape downstream.
type KleeneLogicSuite struct {
	suite.Suite
	ctx context.Context
}

func TestKleeneLogicSuite(t *testing.T) {
	suite.Run(t, new(KleeneLogicSuite))
}

func (s *KleeneLogicSuite) TestAndTruthTable() {
	s.Equal(True, True.And(True))
	s.Equal(False, True.And(False))
	s.Equal(Unknown, True.And(Unknown))
	s.Equal(False, False.And(True))
	s.Equal(False, False.And(False))
	s.Equal(False, False.And(Unknown))
	s.Equal(Unknown, Unknown.And(True))
	s.Equal(False, Unknown.And(False))
	s.Equal(Unknown, Unknown.And(Unknown))
}

func (s *KleeneLogicSuite) TestOrTruthTable() {
	s.Equal(True, True.Or(True))
	s.Equal(True, True.Or(False))
	s.Equal(True, True.Or(Unknown))
	s.Equal(True, False.Or(True))
	s.Equal(False, False.Or(False))
	s.Equal(Unknown, False.Or(Unknown))
	s.Equal(True, Unknown.Or(True))
	s.Equal(Unknown, Unknown.Or(False))
	s.Equal(Unknown, Unknown.Or(Unknown))
}

func (s *KleeneLogicSuite) TestNotTable() {
	s.Equal(False, True.Not())
	s.Equal(True, False.Not())
	s.Equal(Unknown, Unknown.Not())
}

func (s *KleeneLogicSuite) TestFromBoolToken() {
	s.Equal(True, FromBoolToken(tokens.Instance{Kind: tokens.KeywordTrue}))
	s.Equal(False, FromBoolToken(tokens.Instance{Kind: tokens.KeywordFalse}))
}

func (s *KleeneLogicSuite) TestFrom() {
	s.Equal(Unknown, From(nil))
	s.Equal(True, From(true))
	s.Equal(False, From(false))
	b := true
	s.Equal(True, From(&b))
	var nilBool *bool
	s.Equal(Unknown, From(nilBool))
	s.Equal(True, From("reachable"))
	s.Equal(False, From(""))
	s.Equal(False, From([]int{}))
	s.Equal(True, From(reachableThing{}))
}

func (s *KleeneLogicSuite) TestParse() {
	s.Equal(True, Parse("true"))
	s.Equal(True, Parse("1"))
	s.Equal(False, Parse("false"))
	s.Equal(False, Parse("0"))
	s.Equal(Unknown, Parse("unknown"))
	s.Equal(Unknown, Parse("garbage"))
}

type reachableThing struct{}

func (reachableThing) ToTrinary() Value { return True }

func (s *KleeneLogicSuite) SetupSuite() {
	s.ctx = context.Background()
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func (s *KleeneLogicSuite) BeforeTest(suiteName, testName string) {
	slog.InfoContext(s.ctx, "BeforeTest start", slog.String("TestSuite", suiteName), slog.String("TestName", testName))
}

func (s *KleeneLogicSuite) AfterTest(suiteName, testName string) {
	slog.InfoContext(s.ctx, "AfterTest end", slog.String("TestSuite", suiteName), slog.String("TestName", testName))
}
