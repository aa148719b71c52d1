/* Package main: bfi -- a brainfuck interpreter on a circular tape

Brainfuck programs drive a machine with two pointers and a tape. The
instruction pointer walks the program one byte at a time; the data pointer
selects one cell of the tape, a fixed length row of bytes. Both the cells and
the tape wrap around: incrementing 255 gives 0, decrementing 0 gives 255, and
stepping off either end of the tape lands on the other end.

Only eight bytes mean anything:

	+   increment the current cell
	-   decrement the current cell
	>   move the data pointer right
	<   move the data pointer left
	[   if the current cell is 0, jump past the matching ]
	]   if the current cell is not 0, jump back past the matching [
	,   read one byte of input into the current cell
	.   write the current cell as one byte of output

Every other byte is a comment. There is no halt instruction: the machine
stops when the instruction pointer runs off the end of the program.

Brackets are matched by nesting, on demand, whenever a jump is taken; a jump
that finds no partner stops the machine with an error naming the offending
bracket. A jump that is never taken is never checked, so "+[" runs to
completion without complaint.

When a read finds the input exhausted, the end-of-input policy decides what
happens: store a fixed byte (0 by default), or leave the cell unchanged.

Usage:

	bfi -i '++++++++[>++++++++<-]>+.'
	bfi -f hello.b --cells 300 --eof unchanged
	bfi -f cat.b --tee transcript.txt < input.txt
*/
package main
