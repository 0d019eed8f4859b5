package llm

import "context"

type dummyClient struct {
	reply string
}

func (d dummyClient) Complete(context.Context, Request) (string, error) {
	return d.reply, nil
}

// NewDummyClient returns a Client that always answers with reply.
// Useful for local development without API credentials.
func NewDummyClient(reply string) Client {
	return dummyClient{reply: reply}
}
