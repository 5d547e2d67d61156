package errors

// contract
var (
	InvalidAddress              = NewError(100, "invalid address")
	DuplicateKeyError           = NewError(101, "key already taken")
	NotFoundError               = NewError(102, "poll does not exist")
	InvalidChoiceError          = NewError(103, "choice does not exist")
	ContractAlreadyInstantiated = NewError(104, "contract already instantiated")
)

// message
var (
	InvalidMessage = NewError(200, "invalid message")
	UnknownMessage = NewError(201, "unknown message")
)

// storage
var (
	StorageCoreError          = NewError(300, "storage error")
	StorageRecordDoesNotExist = NewError(301, "record does not exist in storage")
)
