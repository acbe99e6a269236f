package errors_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/critter-arena/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.New(errors.CodeNotFound, "profile not found")
	s.Assert().Equal("NOT_FOUND: profile not found", err.Error())
	s.Assert().Equal(errors.ReasonNone, err.Reason)
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndReason() {
	baseErr := errors.CooldownActive("hunt", 3*time.Second)
	wrapped := errors.Wrap(baseErr, "hunt rejected")

	s.Assert().Equal(errors.CodeResourceExhausted, wrapped.Code)
	s.Assert().Equal(errors.ReasonCooldownActive, wrapped.Reason)
	s.Assert().Equal(baseErr, wrapped.Unwrap())

	remaining, ok := errors.Remaining(wrapped)
	s.Require().True(ok)
	s.Assert().Equal(3*time.Second, remaining)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load profile")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("INTERNAL: failed to load profile: connection refused", wrapped.Error())
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestGameConstructors() {
	testCases := []struct {
		name   string
		err    *errors.Error
		code   errors.Code
		reason errors.Reason
	}{
		{"unknown entity", errors.UnknownEntity("dragon"), errors.CodeNotFound, errors.ReasonUnknownEntity},
		{"invalid slot", errors.InvalidSlot(4), errors.CodeInvalidArgument, errors.ReasonInvalidSlot},
		{"role mismatch", errors.RoleMismatch(1, "tank", "attack"), errors.CodeInvalidArgument, errors.ReasonRoleMismatch},
		{"not owned", errors.NotOwned("fox"), errors.CodeFailedPrecondition, errors.ReasonNotOwned},
		{"insufficient funds", errors.InsufficientFunds("coins", 25, 10), errors.CodeFailedPrecondition, errors.ReasonInsufficientFunds},
		{"cooldown", errors.CooldownActive("daily", time.Hour), errors.CodeResourceExhausted, errors.ReasonCooldownActive},
		{"invalid amount", errors.InvalidAmount("bad"), errors.CodeInvalidArgument, errors.ReasonInvalidAmount},
		{"item equipped", errors.ItemEquipped("apple"), errors.CodeFailedPrecondition, errors.ReasonItemEquipped},
		{"team incomplete", errors.TeamIncomplete(2), errors.CodeFailedPrecondition, errors.ReasonTeamIncomplete},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.code, tc.err.Code)
			s.Assert().True(errors.HasReason(tc.err, tc.reason))
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	notOwned := errors.NotOwned("fox")

	s.Assert().True(errors.Is(notOwned, errors.FailedPrecondition("any")))
	s.Assert().True(errors.Is(notOwned, errors.New(errors.CodeFailedPrecondition, "").WithReason(errors.ReasonNotOwned)))
	s.Assert().False(errors.Is(notOwned, errors.New(errors.CodeFailedPrecondition, "").WithReason(errors.ReasonItemEquipped)))
	s.Assert().False(errors.Is(notOwned, errors.InvalidArgument("any")))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Assert().True(errors.IsInvalidArgument(errors.Wrap(errors.InvalidSlot(0), "wrapped")))
	s.Assert().False(errors.HasReason(nil, errors.ReasonNone))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())

	err := errors.NewValidationBuilder().
		RequiredField("Repository").
		RequiredField("Catalog").
		Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Catalog: is required; Repository: is required")
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.InsufficientFunds("energy", 5, 2)

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())
	s.Assert().Equal("not enough energy: need 5, have 2", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(back))
	s.Assert().True(errors.HasReason(back, errors.ReasonInsufficientFunds))
	s.Assert().Equal("energy", errors.GetMeta(back)[errors.MetaResource])
}

func (s *ErrorsTestSuite) TestGRPCPlainStatus() {
	back := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Assert().Equal(errors.ReasonNone, errors.GetReason(back))

	s.Assert().Equal(codes.Internal, status.Code(errors.ToGRPCError(fmt.Errorf("boom"))))
	s.Assert().Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeResourceExhausted, codes.ResourceExhausted},
		{errors.CodeAborted, codes.Aborted},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
