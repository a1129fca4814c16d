// Package mock provides testify/mock implementations of the sshmcp collaborator
// interfaces (Dialer, Transport, FileChannel, DefaultsProvider) for testing purposes.
//
// It allows defining expectations for dialing, command execution and file
// operations, enabling deterministic unit tests of the session Manager without a
// remote host.
//
// Usage:
//
//	transport := &mock.Transport{}
//	transport.On("Run", mock.Anything, "uname -a").Return(0, "Linux\n", "", nil)
//	dialer := &mock.Dialer{}
//	dialer.On("Dial", mock.Anything, mock.Anything).Return(transport, nil)
package mock
