package ws

// Op codes for client actions and server events.
const (
	// Client -> Server
	OpCreateSession int64 = 1
	OpJoinSession   int64 = 2
	OpKickPlayer    int64 = 3
	OpStartGame     int64 = 4
	OpPlayCards     int64 = 5
	OpCallChallenge int64 = 6
	OpPeanutButter  int64 = 7

	// Server -> Client
	OpSessionState int64 = 101
	OpHand         int64 = 102 // sent privately
	OpSessionAck   int64 = 103 // create/join acknowledgement with ids
	OpActionError  int64 = 104 // sent to the acting connection only
)
