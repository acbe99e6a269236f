package v1alpha1

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// File_arena_proto is the descriptor of critterarena/arena/v1alpha1/arena.proto.
// It is registered with the global registry so server reflection can
// describe the arena service.
var File_arena_proto protoreflect.FileDescriptor

func init() {
	fd, err := buildFileDescriptor()
	if err != nil {
		panic(fmt.Sprintf("arena.proto descriptor: %v", err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("arena.proto descriptor: %v", err))
	}
	File_arena_proto = fd
}

// buildFileDescriptor mirrors arena.proto: one service whose methods all take
// and return google.protobuf.Struct.
func buildFileDescriptor() (protoreflect.FileDescriptor, error) {
	structFile := structpb.File_google_protobuf_struct_proto
	structName := "." + string((&structpb.Struct{}).ProtoReflect().Descriptor().FullName())

	methods := make([]*descriptorpb.MethodDescriptorProto, 0, len(ArenaServiceDesc.Methods))
	for _, m := range ArenaServiceDesc.Methods {
		methods = append(methods, &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(m.MethodName),
			InputType:  proto.String(structName),
			OutputType: proto.String(structName),
		})
	}

	fdp := &descriptorpb.FileDescriptorProto{
		Name:       proto.String(ArenaServiceDesc.Metadata.(string)),
		Package:    proto.String(string(protoreflect.FullName(ServiceName).Parent())),
		Dependency: []string{structFile.Path()},
		Syntax:     proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/KirkDiggler/critter-arena/internal/handlers/arena/v1alpha1"),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name:   proto.String(string(protoreflect.FullName(ServiceName).Name())),
			Method: methods,
		}},
	}
	return protodesc.NewFile(fdp, protoregistry.GlobalFiles)
}
