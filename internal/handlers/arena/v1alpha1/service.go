package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "critterarena.arena.v1alpha1.ArenaService"

// Method names
const (
	MethodGetProfile    = "GetProfile"
	MethodResolveEntity = "ResolveEntity"
	MethodClaimDaily    = "ClaimDaily"
	MethodHunt          = "Hunt"
	MethodSellCreature  = "SellCreature"
	MethodSellRarity    = "SellRarity"
	MethodSellItem      = "SellItem"
	MethodBuyItem       = "BuyItem"
	MethodAssignSlot    = "AssignSlot"
	MethodClearSlot     = "ClearSlot"
	MethodEquipItem     = "EquipItem"
	MethodUnequipItem   = "UnequipItem"
	MethodBattle        = "Battle"
	MethodListBattles   = "ListBattles"
)

// ArenaServiceServer is the server API for the arena service. Requests and
// responses are google.protobuf.Struct documents.
type ArenaServiceServer interface {
	GetProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveEntity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClaimDaily(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Hunt(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SellCreature(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SellRarity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SellItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	BuyItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssignSlot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearSlot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnequipItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Battle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListBattles(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(ArenaServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ArenaServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(ArenaServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ArenaServiceDesc is the grpc.ServiceDesc for the arena service
var ArenaServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArenaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodGetProfile, ArenaServiceServer.GetProfile),
		unaryHandler(MethodResolveEntity, ArenaServiceServer.ResolveEntity),
		unaryHandler(MethodClaimDaily, ArenaServiceServer.ClaimDaily),
		unaryHandler(MethodHunt, ArenaServiceServer.Hunt),
		unaryHandler(MethodSellCreature, ArenaServiceServer.SellCreature),
		unaryHandler(MethodSellRarity, ArenaServiceServer.SellRarity),
		unaryHandler(MethodSellItem, ArenaServiceServer.SellItem),
		unaryHandler(MethodBuyItem, ArenaServiceServer.BuyItem),
		unaryHandler(MethodAssignSlot, ArenaServiceServer.AssignSlot),
		unaryHandler(MethodClearSlot, ArenaServiceServer.ClearSlot),
		unaryHandler(MethodEquipItem, ArenaServiceServer.EquipItem),
		unaryHandler(MethodUnequipItem, ArenaServiceServer.UnequipItem),
		unaryHandler(MethodBattle, ArenaServiceServer.Battle),
		unaryHandler(MethodListBattles, ArenaServiceServer.ListBattles),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "critterarena/arena/v1alpha1/arena.proto",
}

// RegisterArenaServiceServer registers the arena service on a gRPC server
func RegisterArenaServiceServer(s grpc.ServiceRegistrar, srv ArenaServiceServer) {
	s.RegisterService(&ArenaServiceDesc, srv)
}

// ArenaServiceClient calls the arena service over a client connection
type ArenaServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewArenaServiceClient creates a client over cc
func NewArenaServiceClient(cc grpc.ClientConnInterface) *ArenaServiceClient {
	return &ArenaServiceClient{cc: cc}
}

// Call invokes one method by name
func (c *ArenaServiceClient) Call(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
