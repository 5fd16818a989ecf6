// Generate the go code from the protocol buffer definitions.
//go:generate protoc --gogo_out=Mgoogle/protobuf/timestamp.proto=github.com/gogo/protobuf/types,plugins=grpc:. -I . ./aggregation.proto
//go:generate goimports -w aggregation.pb.go

package aggregationpb
