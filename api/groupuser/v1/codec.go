package groupuserv1

import (
	"github.com/vmihailenco/msgpack/v5"
)

// CodecName is the Connect codec name for msgpack payloads. It appears
// on the wire in content types such as application/grpc+msgpack.
const CodecName = "msgpack"

// MsgpackCodec marshals Connect messages with msgpack. It replaces the
// default protobuf codec so the hand-maintained message structs in this
// package can travel over the gRPC and Connect protocols without
// generated descriptors.
type MsgpackCodec struct{}

// Name implements connect.Codec.
func (MsgpackCodec) Name() string { return CodecName }

// Marshal implements connect.Codec.
func (MsgpackCodec) Marshal(message any) ([]byte, error) {
	return msgpack.Marshal(message)
}

// Unmarshal implements connect.Codec.
func (MsgpackCodec) Unmarshal(data []byte, message any) error {
	return msgpack.Unmarshal(data, message)
}
