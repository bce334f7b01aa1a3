package ws

// Member is one live room participant: a connection handle bound to a user
// identity. One user holds at most one connection per room in this design;
// multi-device fan-out is a known limitation.
type Member struct {
	ConnId   string `json:"-"`
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

// IHub tracks which connections are joined to which rooms and fans payloads
// out to them. Membership is process-lifetime only; reconnecting clients must
// re-join.
type IHub interface {
	Join(roomId string, client *Client, userId, userName string)
	Leave(roomId, connId string)
	LeaveAll(connId string) []string
	Members(roomId string) []Member
	RoomsOfUser(userId string) []string
	BroadcastToRoom(roomId string, payload []byte)
	BroadcastToRoomExcept(roomId, exceptConnId string, payload []byte)
	Close()
}
