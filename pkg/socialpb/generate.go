// Package socialpb holds the generated habiro.social.v1 messages and the
// Social gRPC service stubs.
package socialpb

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dtroode/habiro-server --go-grpc_out=../.. --go-grpc_opt=module=github.com/dtroode/habiro-server habiro/social/v1/social.proto
