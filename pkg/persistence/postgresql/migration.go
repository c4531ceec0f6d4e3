package postgresql

func migrations() map[int]string {
	return map[int]string{
		1: `
			CREATE TABLE bikes (
				id UUID PRIMARY KEY,
				make VARCHAR(255) NOT NULL,
				model VARCHAR(255) NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				bike_type VARCHAR(100) NOT NULL DEFAULT '',
				size_cm DOUBLE PRECISION NOT NULL DEFAULT 0,
				condition VARCHAR(100) NOT NULL DEFAULT '',
				price NUMERIC(10,2) NOT NULL DEFAULT 0,
				deposit_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE TABLE customers (
				id UUID PRIMARY KEY,
				first_name VARCHAR(255) NOT NULL,
				last_name VARCHAR(255) NOT NULL,
				email VARCHAR(255) NOT NULL,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX idx_customers_email ON customers(email);

			CREATE TABLE items (
				id UUID PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				upc VARCHAR(64) NOT NULL DEFAULT '',
				brand VARCHAR(255) NOT NULL DEFAULT '',
				category VARCHAR(255) NOT NULL DEFAULT '',
				wholesale_cost NUMERIC(10,2) NOT NULL DEFAULT 0,
				standard_price NUMERIC(10,2) NOT NULL DEFAULT 0,
				stock INT NOT NULL DEFAULT 0,
				disabled BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX idx_items_upc ON items(upc);

			CREATE TABLE repairs (
				id UUID PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				price NUMERIC(10,2) NOT NULL DEFAULT 0,
				disabled BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE TABLE users (
				id UUID PRIMARY KEY,
				username VARCHAR(255) NOT NULL UNIQUE,
				firstname VARCHAR(255) NOT NULL DEFAULT '',
				lastname VARCHAR(255) NOT NULL DEFAULT '',
				active BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE TABLE transactions (
				id UUID PRIMARY KEY,
				transaction_num SERIAL,
				transaction_type VARCHAR(50) NOT NULL,
				customer_id UUID REFERENCES customers(id),
				bike_id UUID REFERENCES bikes(id),
				total_cost NUMERIC(10,2) NOT NULL DEFAULT 0,
				description TEXT NOT NULL DEFAULT '',
				is_completed BOOLEAN NOT NULL DEFAULT FALSE,
				is_paid BOOLEAN NOT NULL DEFAULT FALSE,
				is_refurb BOOLEAN NOT NULL DEFAULT FALSE,
				is_urgent BOOLEAN NOT NULL DEFAULT FALSE,
				date_created TIMESTAMP WITH TIME ZONE NOT NULL,
				date_completed TIMESTAMP WITH TIME ZONE,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX idx_transactions_customer_id ON transactions(customer_id);
			CREATE INDEX idx_transactions_bike_id ON transactions(bike_id);
			CREATE INDEX idx_transactions_date_created ON transactions(date_created);
		`,
		2: `
			CREATE TABLE workflow_steps (
				id UUID PRIMARY KEY,
				transaction_id UUID NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
				workflow_type VARCHAR(50) NOT NULL,
				step_name VARCHAR(255) NOT NULL,
				step_order INT NOT NULL,
				is_completed BOOLEAN NOT NULL DEFAULT FALSE,
				created_by UUID NOT NULL,
				completed_by UUID,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				completed_at TIMESTAMP WITH TIME ZONE,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			-- One step per slot per transaction. Concurrent initializations race
			-- on this index; the loser surfaces as a unique violation.
			CREATE UNIQUE INDEX idx_workflow_steps_slot
				ON workflow_steps(transaction_id, workflow_type, step_order);

			CREATE INDEX idx_workflow_steps_transaction ON workflow_steps(transaction_id);
			CREATE INDEX idx_workflow_steps_completed ON workflow_steps(is_completed);
		`,
	}
}
