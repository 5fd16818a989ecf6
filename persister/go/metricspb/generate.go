// Generate the go code from the protocol buffer definitions.
//go:generate protoc --gogo_out=plugins=grpc:. -I . ./metrics.proto
//go:generate goimports -w metrics.pb.go

package metricspb
