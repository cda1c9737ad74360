package entity

type Operation string

const (
	OperationDeposit  Operation = "DEPOSIT"
	OperationWithdraw Operation = "WITHDRAW"
	OperationTransfer Operation = "TRANSFER"
)
