package ui

const (
	divider = "______________________________________________________________"

	msgWelcome        = "The little Professor will help you to train your math skills while playing."
	msgRequestName    = "Please enter your username.\nBetween %d - %d characters"
	msgHallway        = "You are in the Hallway right now. Type any of the following commands to enter a room."
	msgInvalidCommand = "The given input is invalid. Please enter one of the proposed commands."
	msgQuitHint       = `Enter "quit" to quit.`
	msgEnterRoom      = "You entered the room with the mission to solve questions of the operation %s.\nFinish before the time runs out!"
	msgSolve          = "Solve: %s"
	msgSolution       = "Solution: %s"
	msgHelp           = "Move into a room to start the question set and gain enough points to win this level.\nWatch out for the timer!"
	msgTimeIsUp       = "The time is up.\nYour score will be written to the highscore file and the game will end here."
	msgLevelFailed    = "You did not collect enough points to pass this level."
	msgLevelAdvanced  = "You finished this level successfully. Welcome to level %s\nThe timer is reset. Try to gain %d additional points to get to the next level."
	msgNewHighscore   = "YOU ACHIEVED A NEW PERSONAL HIGHSCORE: %d"
	msgGameWon        = "Congratulations! You finished the game successfully with the following score: %d"
	msgGameLost       = "Unfortunately you could not successfully complete the game with a score of %d."
	msgPlayAgain      = "Would you like to play again? ('y' for yes)"
	msgGoodbye        = "Thank you for playing little-professor today. Your highscore will be saved. Goodbye."
	msgError          = "Something went wrong: %v"
)
