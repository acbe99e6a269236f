// Package client provides test commands for the Critter Arena gRPC service
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/handlers/arena/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	userID     string
	jsonOutput bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for Critter Arena",
	Long:  `Client commands allow you to play Critter Arena by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&userID, "user", "", "player id")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the raw response as JSON")

	// Profile and catalog
	ClientCmd.AddCommand(profileCmd)
	ClientCmd.AddCommand(resolveCmd)
	ClientCmd.AddCommand(dailyCmd)
	ClientCmd.AddCommand(huntCmd)

	// Shop
	ClientCmd.AddCommand(sellCmd)
	ClientCmd.AddCommand(sellRarityCmd)
	ClientCmd.AddCommand(sellItemCmd)
	ClientCmd.AddCommand(buyCmd)

	// Team
	ClientCmd.AddCommand(assignCmd)
	ClientCmd.AddCommand(clearCmd)
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(unequipCmd)

	// Battles
	ClientCmd.AddCommand(battleCmd)
	ClientCmd.AddCommand(historyCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// call invokes one arena method and returns the response struct. Errors
// carry the server's reason so printError can show it.
func call(method string, fields map[string]interface{}) (*structpb.Struct, error) {
	conn, err := createConnection()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := v1alpha1.NewArenaServiceClient(conn).Call(ctx, method, req)
	if err != nil {
		return nil, describe(errors.FromGRPCError(err))
	}
	return resp, nil
}

// userRequest starts a request for the --user player
func userRequest() (map[string]interface{}, error) {
	if userID == "" {
		return nil, fmt.Errorf("--user is required")
	}
	return map[string]interface{}{"user_id": userID}, nil
}

func describe(err error) error {
	var e *errors.Error
	if !errors.As(err, &e) || e.Reason == errors.ReasonNone {
		return err
	}
	return fmt.Errorf("%s (%s)", e.Message, e.Reason)
}

// printJSON writes the raw response and reports whether it did
func printJSON(w io.Writer, resp *structpb.Struct) (bool, error) {
	if !jsonOutput {
		return false, nil
	}
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return true, fmt.Errorf("failed to marshal response: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(out))
	return true, nil
}

func field(s *structpb.Struct, key string) *structpb.Value {
	return s.GetFields()[key]
}

func sub(s *structpb.Struct, key string) *structpb.Struct {
	return field(s, key).GetStructValue()
}

func str(s *structpb.Struct, key string) string {
	return field(s, key).GetStringValue()
}

func num(s *structpb.Struct, key string) int64 {
	return int64(field(s, key).GetNumberValue())
}

func list(s *structpb.Struct, key string) []*structpb.Value {
	return field(s, key).GetListValue().GetValues()
}
