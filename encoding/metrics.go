package encoding

import (
	"github.com/corpix/b85/metrics"
)

// EncodeDecoderMetrics counts operations and transferred bytes of the
// wrapped EncodeDecoder under the Name label.
type EncodeDecoderMetrics struct {
	EncodeDecoder
	Name string
}

const (
	metricsOperationEncode = "encode"
	metricsOperationDecode = "decode"

	metricsStatusOk    = "ok"
	metricsStatusError = "error"

	metricsDirectionIn  = "in"
	metricsDirectionOut = "out"
)

var (
	MetricsOperations = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: "b85",
			Subsystem: "codec",
			Name:      "operations_total",
			Help:      "Number of encode and decode operations",
		},
		[]string{"codec", "operation", "status"},
	)
	MetricsBytes = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: "b85",
			Subsystem: "codec",
			Name:      "bytes_total",
			Help:      "Number of bytes consumed and produced by encode and decode operations",
		},
		[]string{"codec", "operation", "direction"},
	)

	_ EncodeDecoder = &EncodeDecoderMetrics{}
)

func init() {
	metrics.MustRegister(MetricsOperations, MetricsBytes)
}

//

func (e *EncodeDecoderMetrics) Encode(buf []byte) ([]byte, error) {
	out, err := e.EncodeDecoder.Encode(buf)
	e.observe(metricsOperationEncode, len(buf), len(out), err)
	return out, err
}

func (e *EncodeDecoderMetrics) Decode(buf []byte) ([]byte, error) {
	out, err := e.EncodeDecoder.Decode(buf)
	e.observe(metricsOperationDecode, len(buf), len(out), err)
	return out, err
}

func (e *EncodeDecoderMetrics) observe(operation string, in int, out int, err error) {
	status := metricsStatusOk
	if err != nil {
		status = metricsStatusError
	}
	MetricsOperations.WithLabelValues(e.Name, operation, status).Inc()
	MetricsBytes.WithLabelValues(e.Name, operation, metricsDirectionIn).Add(float64(in))
	MetricsBytes.WithLabelValues(e.Name, operation, metricsDirectionOut).Add(float64(out))
}

func NewEncodeDecoderMetrics(name string, next EncodeDecoder) *EncodeDecoderMetrics {
	return &EncodeDecoderMetrics{
		EncodeDecoder: next,
		Name:          name,
	}
}
