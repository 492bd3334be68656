package model

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

const (
	InsertEvent = "INSERT"
	UpdateEvent = "UPDATE"
	DeleteEvent = "DELETE"
)

// RowEvent is a row-level change published on a realtime channel. Record keeps
// the backend's wire representation and is decoded by the consumer.
type RowEvent struct {
	Table     string          `json:"table"`
	Type      string          `json:"type"`
	Record    json.RawMessage `json:"record"`
	OldRecord json.RawMessage `json:"old_record,omitempty"`
}

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string   `json:"channel"`
	Data    RowEvent `json:"data"`
}

type CentrifugoBroadcastParams struct {
	Channels []string `json:"channels"`
	Data     RowEvent `json:"data"`
}

// CentrifugoCommand is a client-to-server frame of the JSON protocol.
type CentrifugoCommand struct {
	ID        uint32                      `json:"id"`
	Connect   *CentrifugoConnectRequest   `json:"connect,omitempty"`
	Subscribe *CentrifugoSubscribeRequest `json:"subscribe,omitempty"`
}

type CentrifugoConnectRequest struct {
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
}

type CentrifugoSubscribeRequest struct {
	Channel string `json:"channel"`
	Token   string `json:"token,omitempty"`
}

// CentrifugoReply is a server-to-client frame. An empty reply is a ping.
type CentrifugoReply struct {
	ID        uint32           `json:"id,omitempty"`
	Error     *CentrifugoError `json:"error,omitempty"`
	Connect   json.RawMessage  `json:"connect,omitempty"`
	Subscribe json.RawMessage  `json:"subscribe,omitempty"`
	Push      *CentrifugoPush  `json:"push,omitempty"`
}

func (r CentrifugoReply) IsPing() bool {
	return r.ID == 0 && r.Error == nil && r.Connect == nil && r.Subscribe == nil && r.Push == nil
}

type CentrifugoError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CentrifugoPush struct {
	Channel    string                 `json:"channel"`
	Pub        *CentrifugoPublication `json:"pub,omitempty"`
	Disconnect *CentrifugoError       `json:"disconnect,omitempty"`
}

type CentrifugoPublication struct {
	Data json.RawMessage `json:"data"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID string `json:"user_id"`
}

// SessionClaims are carried by the access token the auth layer hands out.
type SessionClaims struct {
	jwt.RegisteredClaims
}
