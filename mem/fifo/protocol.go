package fifo

import (
	"reflect"

	"github.com/sarchlab/clockmem/sim"
)

// An EnqueueReq requests that one element is written into the FIFO.
type EnqueueReq struct {
	sim.MsgMeta

	Data []byte
}

// Meta returns the meta data associated with the message.
func (r *EnqueueReq) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a cloned EnqueueReq with a different ID.
func (r *EnqueueReq) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// EnqueueReqBuilder can build enqueue requests.
type EnqueueReqBuilder struct {
	src, dst sim.Port
	data     []byte
}

// WithSrc sets the source of the request to build.
func (b EnqueueReqBuilder) WithSrc(src sim.Port) EnqueueReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the request to build.
func (b EnqueueReqBuilder) WithDst(dst sim.Port) EnqueueReqBuilder {
	b.dst = dst
	return b
}

// WithData sets the element carried by the request to build.
func (b EnqueueReqBuilder) WithData(data []byte) EnqueueReqBuilder {
	b.data = data
	return b
}

// Build creates a new EnqueueReq.
func (b EnqueueReqBuilder) Build() *EnqueueReq {
	r := &EnqueueReq{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficClass = reflect.TypeOf(EnqueueReq{}).String()
	r.Data = b.data

	return r
}

// A DequeueReq requests that the oldest element is read out of the FIFO.
type DequeueReq struct {
	sim.MsgMeta
}

// Meta returns the meta data associated with the message.
func (r *DequeueReq) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a cloned DequeueReq with a different ID.
func (r *DequeueReq) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// DequeueReqBuilder can build dequeue requests.
type DequeueReqBuilder struct {
	src, dst sim.Port
}

// WithSrc sets the source of the request to build.
func (b DequeueReqBuilder) WithSrc(src sim.Port) DequeueReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the request to build.
func (b DequeueReqBuilder) WithDst(dst sim.Port) DequeueReqBuilder {
	b.dst = dst
	return b
}

// Build creates a new DequeueReq.
func (b DequeueReqBuilder) Build() *DequeueReq {
	r := &DequeueReq{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficClass = reflect.TypeOf(DequeueReq{}).String()

	return r
}

// A DequeueRsp responds to an admitted DequeueReq with the dequeued element.
type DequeueRsp struct {
	sim.MsgMeta

	RespondTo string
	Data      []byte
}

// Meta returns the meta data associated with the message.
func (r *DequeueRsp) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a cloned DequeueRsp with a different ID.
func (r *DequeueRsp) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// GetRspTo returns the ID of the request that this response is to.
func (r *DequeueRsp) GetRspTo() string {
	return r.RespondTo
}

// DequeueRspBuilder can build dequeue responses.
type DequeueRspBuilder struct {
	src, dst sim.Port
	rspTo    string
	data     []byte
}

// WithSrc sets the source of the response to build.
func (b DequeueRspBuilder) WithSrc(src sim.Port) DequeueRspBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the response to build.
func (b DequeueRspBuilder) WithDst(dst sim.Port) DequeueRspBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the request that the response is to.
func (b DequeueRspBuilder) WithRspTo(id string) DequeueRspBuilder {
	b.rspTo = id
	return b
}

// WithData sets the element carried by the response to build.
func (b DequeueRspBuilder) WithData(data []byte) DequeueRspBuilder {
	b.data = data
	return b
}

// Build creates a new DequeueRsp.
func (b DequeueRspBuilder) Build() *DequeueRsp {
	r := &DequeueRsp{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficClass = reflect.TypeOf(DequeueRsp{}).String()
	r.RespondTo = b.rspTo
	r.Data = b.data

	return r
}

// A ResetReq requests a synchronous reset of the FIFO.
type ResetReq struct {
	sim.MsgMeta
}

// Meta returns the meta data associated with the message.
func (r *ResetReq) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a cloned ResetReq with a different ID.
func (r *ResetReq) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// ResetReqBuilder can build reset requests.
type ResetReqBuilder struct {
	src, dst sim.Port
}

// WithSrc sets the source of the request to build.
func (b ResetReqBuilder) WithSrc(src sim.Port) ResetReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the request to build.
func (b ResetReqBuilder) WithDst(dst sim.Port) ResetReqBuilder {
	b.dst = dst
	return b
}

// Build creates a new ResetReq.
func (b ResetReqBuilder) Build() *ResetReq {
	r := &ResetReq{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficClass = reflect.TypeOf(ResetReq{}).String()

	return r
}
